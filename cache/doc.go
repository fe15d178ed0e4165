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


// Package cache provides the in-memory TTL cache the crawler uses to avoid
// redundant embedding work within one crawl session, plus content-derived
// cache keys so identical text maps to the same entry.
//
// The cache is process-local only. Entries expire ttl after insertion and
// an expired entry is never returned by Get. Nothing survives a restart.
package cache
