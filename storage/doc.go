// Copyright 2025 Poiesic Systems
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


// Package storage provides the storage abstraction layer for leadequator.
//
// This package defines repository interfaces that decouple storage
// implementation from business logic. It allows for different storage backends
// (BadgerDB, in-memory, etc.) to be used interchangeably.
//
// # Architecture
//
// The storage layer follows the Repository pattern:
//
//   - LeadRepository: Operations for persisted leads, keyed by canonical URL
//   - ExampleRepository: Operations for labeled intent examples, including
//     nearest-neighbor retrieval over their embedding vectors
//
// Lead keys are derived from the lead URL by content hashing, which makes the
// URL the authoritative uniqueness boundary: inserting the same URL twice is
// reported as OutcomeAlreadyExists rather than an error.
//
// # Usage
//
// Create repositories backed by BadgerDB:
//
//	backend, err := badger.OpenBackend("/path/to/db", false)
//	leadRepo, err := badger.NewLeadRepository(backend)
//	exampleRepo, err := badger.NewExampleRepository(backend)
//
// Use in tests with in-memory storage:
//
//	leadRepo, exampleRepo, backend, err := badger.NewMemoryRepositories()
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation
// and timeout support.
package storage
