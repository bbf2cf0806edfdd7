// Copyright 2025 The obkit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package attribute holds typed accessor objects over named fields of a
// parent type. Instances are normally produced by generated code; the
// accessors themselves carry no reactive behavior.
package attribute

import (
	"reflect"

	"github.com/pkg/errors"
)

// ErrReadOnlyAttribute is returned by Set on an attribute declared without a
// setter.
var ErrReadOnlyAttribute = errors.New("attribute: set is not supported on a read-only attribute")

// Attribute is a get/set capability over one named, typed field or getter of
// the parent type E.
type Attribute[E any, T any] interface {
	// Name returns the declared field or getter name.
	Name() string

	// Type returns the attribute's declared value type.
	Type() reflect.Type

	// Parent returns the declaring type.
	Parent() reflect.Type

	// Get reads the attribute value from entity.
	Get(entity E) T

	// Set writes value into entity. Read-only attributes fail with
	// ErrReadOnlyAttribute.
	Set(entity E, value T) error

	// ReadOnly reports whether the attribute was declared without a setter.
	ReadOnly() bool
}

type attribute[E any, T any] struct {
	name   string
	getter func(E) T
	setter func(E, T)
}

// New declares a read-write attribute.
func New[E any, T any](name string, getter func(E) T, setter func(E, T)) Attribute[E, T] {
	return &attribute[E, T]{
		name:   name,
		getter: getter,
		setter: setter,
	}
}

// NewReadOnly declares an attribute without a setter.
func NewReadOnly[E any, T any](name string, getter func(E) T) Attribute[E, T] {
	return &attribute[E, T]{
		name:   name,
		getter: getter,
	}
}

func (a *attribute[E, T]) Name() string {
	return a.name
}

func (a *attribute[E, T]) Type() reflect.Type {
	return reflect.TypeFor[T]()
}

func (a *attribute[E, T]) Parent() reflect.Type {
	return reflect.TypeFor[E]()
}

func (a *attribute[E, T]) Get(entity E) T {
	return a.getter(entity)
}

func (a *attribute[E, T]) Set(entity E, value T) error {
	if a.setter == nil {
		return ErrReadOnlyAttribute
	}
	a.setter(entity, value)
	return nil
}

func (a *attribute[E, T]) ReadOnly() bool {
	return a.setter == nil
}
