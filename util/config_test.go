// Copyright 2019, BeamIO, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSchemaPath_Default(t *testing.T) {
	t.Setenv(ESPA_SCHEMA, "")
	os.Unsetenv(ESPA_SCHEMA)
	assert.Equal(t, defaultSchemaPath, GetSchemaPath())
}

func TestGetSchemaPath_FromEnvironment(t *testing.T) {
	t.Setenv(ESPA_SCHEMA, "/opt/espa/schema.xsd")
	assert.Equal(t, "/opt/espa/schema.xsd", GetSchemaPath())
}

func TestIsAuditEnabled(t *testing.T) {
	t.Setenv(AUDIT, "true")
	enabled, err := IsAuditEnabled()
	assert.NoError(t, err)
	assert.True(t, enabled)

	t.Setenv(AUDIT, "0")
	enabled, err = IsAuditEnabled()
	assert.NoError(t, err)
	assert.False(t, enabled)

	t.Setenv(AUDIT, "")
	enabled, err = IsAuditEnabled()
	assert.Error(t, err)
	assert.False(t, enabled)
}
