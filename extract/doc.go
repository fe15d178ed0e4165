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


// Package extract turns raw page markup into the readable text the scoring
// pipeline works on: ordered text blocks from structurally meaningful tags,
// a page title with a fallback, and a bounded excerpt. Malformed HTML is
// tolerated; the worst outcome is an empty block list, never an error that
// aborts a crawl.
package extract
