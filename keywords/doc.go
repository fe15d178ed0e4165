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


// Package keywords loads the keyword vocabulary the crawler classifies
// against and implements the lexical classification steps: query intent
// inference, the pre-embedding relevance gate, skill and contract
// detection, and the recency signal.
//
// Keyword sets are loaded once at startup from a JSON file and are
// read-only afterwards, so a single Classifier is safe to share across
// all concurrent crawl tasks without locking.
package keywords
