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

import "fmt"

// InstanceMetadata holds the metadata fetched for the instance. All fields
// except PublicHostname are populated whenever Get succeeds.
type InstanceMetadata struct {
	// Region the instance runs in, derived from the availability zone.
	// Always one of the values returned by KnownRegions.
	Region string

	// AvailabilityZone as reported by the metadata service, e.g. "us-west-2a".
	AvailabilityZone string

	// InstanceID of the instance, e.g. "i-1234567890abcdef0".
	InstanceID string

	// AccountID owning the instance, taken from the identity-credentials
	// document.
	AccountID string

	// AmiID the instance was launched from.
	AmiID string

	// InstanceType, e.g. "m5.large".
	InstanceType string

	// Hostname of the instance.
	Hostname string

	// LocalHostname of the instance.
	LocalHostname string

	// PublicHostname is nil when the instance has no public hostname
	// assigned.
	PublicHostname *string
}

func (m *InstanceMetadata) String() string {
	publicHostname := "<none>"
	if m.PublicHostname != nil {
		publicHostname = *m.PublicHostname
	}

	return fmt.Sprintf("region=%s availability-zone=%s instance-id=%s account-id=%s ami-id=%s instance-type=%s hostname=%s local-hostname=%s public-hostname=%s",
		m.Region, m.AvailabilityZone, m.InstanceID, m.AccountID, m.AmiID, m.InstanceType, m.Hostname, m.LocalHostname, publicHostname)
}
