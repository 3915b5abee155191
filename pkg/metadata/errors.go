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

// HTTPError reports a transport-level failure: connection error, timeout or
// a non-200 status from the metadata service.
type HTTPError struct {
	Cause error
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("Http Request Error: %v", e.Cause)
}

func (e *HTTPError) Unwrap() error {
	return e.Cause
}

// IOError reports a failure reading a response body.
type IOError struct {
	Cause error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("IO Error: %v", e.Cause)
}

func (e *IOError) Unwrap() error {
	return e.Cause
}

// NotFoundError reports that a mandatory metadata endpoint could not be
// fetched. URL is the endpoint that failed.
type NotFoundError struct {
	URL string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Not found: %s", e.URL)
}

// JSONError reports malformed identity-credentials JSON or a missing
// AccountId field.
type JSONError struct {
	Message string
}

func (e *JSONError) Error() string {
	return fmt.Sprintf("JSON parsing error: %s", e.Message)
}

// UnknownAvailabilityZoneError reports an availability zone that matched no
// entry in the known-region table.
type UnknownAvailabilityZoneError struct {
	AvailabilityZone string
}

func (e *UnknownAvailabilityZoneError) Error() string {
	return fmt.Sprintf("Unknown AvailabilityZone: %s", e.AvailabilityZone)
}
