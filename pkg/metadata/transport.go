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
	"fmt"
	"io"
	"net"
	"net/http"
)

// HttpClient abstracts the HTTP agent the client talks to the metadata
// service through. Implementations must bound every request with the
// configured timeouts.
type HttpClient interface {
	Get(endpoint string, headers map[string]string) ([]byte, error)
	Put(endpoint string, headers map[string]string) ([]byte, error)
}

type httpClient struct {
	client *http.Client
}

var _ HttpClient = &httpClient{}

func newHttpClient() *httpClient {
	return &httpClient{
		client: &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: requestTimeout,
				}).DialContext,
			},
		},
	}
}

func (h *httpClient) Get(endpoint string, headers map[string]string) ([]byte, error) {
	return h.do(http.MethodGet, endpoint, headers)
}

func (h *httpClient) Put(endpoint string, headers map[string]string) ([]byte, error) {
	return h.do(http.MethodPut, endpoint, headers)
}

func (h *httpClient) do(method, endpoint string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequest(method, endpoint, nil)
	if err != nil {
		return nil, &HTTPError{Cause: fmt.Errorf("could not build request for %v: %v", endpoint, err)}
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, &HTTPError{Cause: fmt.Errorf("could not get data from %v %v", endpoint, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{Cause: fmt.Errorf("incorrect status code %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &IOError{Cause: fmt.Errorf("unable to read response body: %v", err)}
	}

	return body, nil
}
