/*
Copyright the Teatimer contributors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package flag holds pflag.Value implementations shared by teatimer commands.
package flag

import (
	"github.com/pkg/errors"
)

// Enum is a string flag restricted to a fixed set of values.
type Enum struct {
	allowedValues []string
	value         string
}

// NewEnum returns an enum flag holding defaultValue that accepts only
// allowedValues.
func NewEnum(defaultValue string, allowedValues ...string) *Enum {
	return &Enum{
		allowedValues: allowedValues,
		value:         defaultValue,
	}
}

func (e *Enum) String() string {
	return e.value
}

// Set assigns s, or returns an error if s is not an allowed value.
func (e *Enum) Set(s string) error {
	for _, val := range e.allowedValues {
		if val == s {
			e.value = s
			return nil
		}
	}

	return errors.Errorf("invalid value: %q", s)
}

// Type is empty so help output shows only the flag's own usage text, which
// lists the allowed values.
func (e *Enum) Type() string {
	return ""
}

// AllowedValues returns the flag's valid values.
func (e *Enum) AllowedValues() []string {
	return e.allowedValues
}
