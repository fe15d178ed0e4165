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


// Package crawl orchestrates one query-driven crawl: candidate URLs from
// the search provider, concurrent page fetches, extraction, the keyword
// relevance gate, embedding-based scoring, and the final ranked result
// list.
//
// The Crawler combines three relevance signals into one blended score:
//
//   - semantic similarity between the query and page embeddings (weight 0.5)
//   - keyword match ratio between query and page tokens (weight 0.4)
//   - a flat recency bonus when the page text carries recency markers (0.1)
//
// Results are sorted by score descending with a stable sort, so equal
// scores keep their discovery order. Page-level failures are logged and
// skipped; only a failure to embed the query itself aborts a crawl.
package crawl
