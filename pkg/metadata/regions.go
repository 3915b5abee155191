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

import "strings"

// RegionTableVersion identifies the revision of the known-region table.
// Bump it whenever knownRegions changes.
const RegionTableVersion = 1

// knownRegions is the table of region codes the client can resolve an
// availability zone against. There is no runtime source for this list; it
// must be updated by hand as AWS launches new regions.
var knownRegions = []string{
	"ap-south-1",
	"eu-west-3",
	"eu-north-1",
	"eu-west-2",
	"eu-west-1",
	"ap-northeast-3",
	"ap-northeast-2",
	"ap-northeast-1",
	"sa-east-1",
	"ca-central-1",
	"ap-southeast-1",
	"ap-southeast-2",
	"eu-central-1",
	"us-east-1",
	"us-east-2",
	"us-west-1",
	"us-west-2",
	"cn-north-1",
	"cn-northwest-1",
}

// KnownRegions returns a copy of the region table the client resolves
// availability zones against.
func KnownRegions() []string {
	regions := make([]string, len(knownRegions))
	copy(regions, knownRegions)
	return regions
}

// regionForAvailabilityZone maps an availability zone such as "us-west-2a"
// to its region code. The zone carries a trailing zone letter, so the match
// is a prefix test against each known region.
func regionForAvailabilityZone(availabilityZone string) (string, error) {
	for _, region := range knownRegions {
		if strings.HasPrefix(availabilityZone, region) {
			return region, nil
		}
	}

	return "", &UnknownAvailabilityZoneError{AvailabilityZone: availabilityZone}
}
