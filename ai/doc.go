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


// Package ai abstracts the text-embedding service the crawler scores with.
//
// The Embedder interface is the only AI capability the pipeline needs; the
// crawl package depends on the abstraction so scoring logic can be tested
// without a model.
//
// Two implementations ship with the module:
//
//   - ai/openai: production implementation backed by any OpenAI-compatible
//     embedding endpoint (Ollama, LocalAI, vLLM, the hosted API)
//   - ai/mock: deterministic test double with injectable behavior
//
// Production constructors return the interface type; mock constructors
// return concrete types so tests can inject behavior and assert call
// counts.
//
// Failure policy: if the embedding client cannot be constructed the
// constructor fails, and callers treat that as fatal at startup. Encode
// failures propagate as errors; there is no silent fallback vector.
package ai
