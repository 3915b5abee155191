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

// Package metadata fetches common fields from the EC2 Instance Metadata
// Service (IMDSv2):
// https://docs.aws.amazon.com/AWSEC2/latest/UserGuide/ec2-instance-metadata.html
//
// It only works on an EC2 instance, where the link-local metadata endpoint
// is reachable.
package metadata

import (
	"encoding/json"
	"errors"
	"time"

	"k8s.io/klog/v2"
)

const (
	tokenURL        = "http://169.254.169.254/latest/api/token"
	tokenTTLHeader  = "X-aws-ec2-metadata-token-ttl-seconds"
	tokenTTLSeconds = "21600"
	tokenHeader     = "X-aws-ec2-metadata-token"

	requestTimeout = 2000 * time.Millisecond
)

// InstanceMetadataClient fetches instance metadata over IMDSv2. The zero
// value is not usable; construct it with NewInstanceMetadataClient. A client
// holds no per-call state, so it is safe for concurrent use.
type InstanceMetadataClient struct {
	client HttpClient
}

// NewInstanceMetadataClient returns a client bound to the fixed link-local
// metadata endpoint with 2 second connect and request timeouts.
func NewInstanceMetadataClient() *InstanceMetadataClient {
	return &InstanceMetadataClient{client: newHttpClient()}
}

// getToken requests a session token for the metadata service. The token is
// scoped to a single Get call and never cached.
func (c *InstanceMetadataClient) getToken() (string, error) {
	body, err := c.client.Put(tokenURL, map[string]string{tokenTTLHeader: tokenTTLSeconds})
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// fetchField fetches one metadata endpoint with the session token. Transport
// failures are normalized to NotFoundError, since several endpoints are
// legitimately absent depending on how the instance is configured. A failure
// reading an otherwise successful response is not normalized.
func (c *InstanceMetadataClient) fetchField(field metadataField, token string) (string, error) {
	klog.V(5).Infof("Fetching instance metadata from %s", field.url())

	body, err := c.client.Get(field.url(), map[string]string{tokenHeader: token})
	if err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) {
			return "", err
		}
		return "", &NotFoundError{URL: field.url()}
	}

	return string(body), nil
}

// accountIDFromIdentityCredentials extracts the AccountId field from the
// identity-credentials document returned by the metadata service.
func accountIDFromIdentityCredentials(identityCredentials string) (string, error) {
	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(identityCredentials), &parsed); err != nil {
		return "", &JSONError{Message: err.Error()}
	}

	accountID, ok := parsed["AccountId"].(string)
	if !ok {
		return "", &JSONError{Message: "Missing AccountId field"}
	}

	return accountID, nil
}

// Get fetches the instance metadata for the machine. Each call acquires a
// fresh token and fetches every field in a fixed order; the first failure on
// a mandatory field aborts the call and no partial result is returned.
func (c *InstanceMetadataClient) Get() (*InstanceMetadata, error) {
	token, err := c.getToken()
	if err != nil {
		return nil, err
	}

	instanceID, err := c.fetchField(fieldInstanceID, token)
	if err != nil {
		return nil, err
	}

	identityCredentials, err := c.fetchField(fieldAccountID, token)
	if err != nil {
		return nil, err
	}
	accountID, err := accountIDFromIdentityCredentials(identityCredentials)
	if err != nil {
		return nil, err
	}

	amiID, err := c.fetchField(fieldAmiID, token)
	if err != nil {
		return nil, err
	}

	availabilityZone, err := c.fetchField(fieldAvailabilityZone, token)
	if err != nil {
		return nil, err
	}
	region, err := regionForAvailabilityZone(availabilityZone)
	if err != nil {
		return nil, err
	}

	instanceType, err := c.fetchField(fieldInstanceType, token)
	if err != nil {
		return nil, err
	}

	hostname, err := c.fetchField(fieldHostname, token)
	if err != nil {
		return nil, err
	}

	localHostname, err := c.fetchField(fieldLocalHostname, token)
	if err != nil {
		return nil, err
	}

	// public-hostname isn't always available - the instance must be
	// configured to support having one assigned.
	var publicHostname *string
	if body, err := c.fetchField(fieldPublicHostname, token); err != nil {
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		klog.V(4).Infof("No public hostname assigned to instance %s", instanceID)
	} else {
		publicHostname = &body
	}

	return &InstanceMetadata{
		Region:           region,
		AvailabilityZone: availabilityZone,
		InstanceID:       instanceID,
		AccountID:        accountID,
		AmiID:            amiID,
		InstanceType:     instanceType,
		Hostname:         hostname,
		LocalHostname:    localHostname,
		PublicHostname:   publicHostname,
	}, nil
}
