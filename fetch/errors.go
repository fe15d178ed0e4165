// Copyright 2026 Veilleur Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package fetch

import "errors"

var (
	// ErrTimeout indicates the request exceeded the per-fetch timeout.
	ErrTimeout = errors.New("fetch timed out")

	// ErrConnection indicates the request failed before a response arrived.
	ErrConnection = errors.New("connection failed")

	// ErrBadStatus indicates the server answered with a non-success status.
	ErrBadStatus = errors.New("unexpected response status")

	// ErrDecode indicates the response body is not decodable page text.
	ErrDecode = errors.New("undecodable response content")
)
