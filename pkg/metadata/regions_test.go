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

import (
	"errors"
	"testing"
)

func TestRegionForAvailabilityZone(t *testing.T) {
	for _, region := range KnownRegions() {
		for _, zoneLetter := range []string{"a", "b", "c"} {
			az := region + zoneLetter

			got, err := regionForAvailabilityZone(az)
			if err != nil {
				t.Fatalf("regionForAvailabilityZone(%q) failed: expected no error, got %v", az, err)
			}

			if got != region {
				t.Fatalf("regionForAvailabilityZone(%q) failed: expected %v, got %v", az, region, got)
			}
		}
	}
}

func TestRegionForAvailabilityZoneUnknown(t *testing.T) {
	az := "mars-west-1a"

	_, err := regionForAvailabilityZone(az)
	if err == nil {
		t.Fatalf("regionForAvailabilityZone(%q) failed: expected error", az)
	}

	var unknownErr *UnknownAvailabilityZoneError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("regionForAvailabilityZone(%q) failed: expected UnknownAvailabilityZoneError, got %v", az, err)
	}

	if unknownErr.AvailabilityZone != az {
		t.Fatalf("UnknownAvailabilityZoneError failed: expected %v, got %v", az, unknownErr.AvailabilityZone)
	}
}

func TestKnownRegionsReturnsCopy(t *testing.T) {
	regions := KnownRegions()
	if len(regions) == 0 {
		t.Fatal("KnownRegions() failed: expected a non-empty region table")
	}

	regions[0] = "mutated"

	if KnownRegions()[0] == "mutated" {
		t.Fatal("KnownRegions() failed: callers must not be able to mutate the region table")
	}
}
