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
	"strconv"
)

// Environment variables
const (
	ESPA_SCHEMA = "ESPA_SCHEMA"
	AUDIT       = "AUDIT"
)

// ESPACommonVersion is the release of the product formatter library; it is
// stamped into the app_version of every band this tool produces.
const ESPACommonVersion = "1.14.0"

const defaultSchemaPath = "/usr/local/espa-product-formatter/schema/espa_internal_metadata_v2_0.xsd"

// GetSchemaPath returns the path of the local ESPA metadata schema from the
// ESPA_SCHEMA environment variable, or the installed default
func GetSchemaPath() string {
	schemaPath, ok := os.LookupEnv(ESPA_SCHEMA)
	if !ok {
		LogDebug(&BasicLogContext{}, "Did not get an explicit schema path from the environment. Using the installed default: "+defaultSchemaPath)
		return defaultSchemaPath
	}
	return schemaPath
}

// IsAuditEnabled returns true if the AUDIT environment variable is true
func IsAuditEnabled() (bool, error) {
	return strconv.ParseBool(os.Getenv(AUDIT))
}
