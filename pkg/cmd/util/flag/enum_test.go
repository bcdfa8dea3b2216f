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

package flag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringOfEnum(t *testing.T) {
	enum := NewEnum("text", "text", "json")
	assert.Equal(t, "text", enum.String())
}

func TestSetOfEnum(t *testing.T) {
	enum := NewEnum("text", "text", "json")
	assert.Error(t, enum.Set("yaml"))
	assert.Equal(t, "text", enum.String())

	require.NoError(t, enum.Set("json"))
	assert.Equal(t, "json", enum.String())
}

func TestTypeOfEnum(t *testing.T) {
	enum := NewEnum("text", "text", "json")
	assert.Equal(t, "", enum.Type())
}

func TestAllowedValuesOfEnum(t *testing.T) {
	enum := NewEnum("text", "text", "json")
	assert.Equal(t, []string{"text", "json"}, enum.AllowedValues())
}
