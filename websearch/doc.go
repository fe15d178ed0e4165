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


// Package websearch provides the search-provider client that supplies
// candidate URLs for a query. The DuckDuckGo implementation scrapes the
// provider's HTML endpoint, resolves its redirect links, drops results on
// the provider's own domain, and dedupes. A provider failure is an error
// the orchestrator downgrades to zero results, never a crash.
package websearch
