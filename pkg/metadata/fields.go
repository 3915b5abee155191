/*
Copyright 2024 The Tracer Authors.

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

package metadata

// metadataField enumerates the fixed set of metadata endpoints the client
// knows how to fetch. The set is closed; new fields require a new entry in
// fieldURLs.
type metadataField int

const (
	fieldInstanceID metadataField = iota
	fieldAmiID
	fieldAccountID
	fieldAvailabilityZone
	fieldInstanceType
	fieldHostname
	fieldLocalHostname
	fieldPublicHostname
)

var fieldURLs = map[metadataField]string{
	fieldInstanceID:       "http://169.254.169.254/latest/meta-data/instance-id",
	fieldAmiID:            "http://169.254.169.254/latest/meta-data/ami-id",
	fieldAccountID:        "http://169.254.169.254/latest/meta-data/identity-credentials/ec2/info",
	fieldAvailabilityZone: "http://169.254.169.254/latest/meta-data/placement/availability-zone",
	fieldInstanceType:     "http://169.254.169.254/latest/meta-data/instance-type",
	fieldHostname:         "http://169.254.169.254/latest/meta-data/hostname",
	fieldLocalHostname:    "http://169.254.169.254/latest/meta-data/local-hostname",
	fieldPublicHostname:   "http://169.254.169.254/latest/meta-data/public-hostname",
}

func (f metadataField) url() string {
	return fieldURLs[f]
}
