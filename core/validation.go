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


package core

import "fmt"

// ValidateSearchQuery validates a SearchQuery according to domain rules.
//
// Validation rules:
//   - Industry must not be empty
//   - BuyingSignals must not be empty
//
// Location is optional and not validated.
func ValidateSearchQuery(query *SearchQuery) error {
	if query == nil {
		return fmt.Errorf("%w: query is nil", ErrInvalidSearchQuery)
	}

	if query.Industry == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSearchQuery, ErrEmptyIndustry)
	}

	if query.BuyingSignals == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSearchQuery, ErrEmptyBuyingSignals)
	}

	return nil
}

// ValidateLead validates a Lead according to domain rules.
//
// Validation rules:
//   - Link must not be empty
//   - Intent.IntentScore must be in [0,100]
//
// NOT validated (populated downstream):
//   - ImreScore (recomputed on every run)
//   - Domain (derived from Link)
//   - InsertedAt (set by storage)
func ValidateLead(lead *Lead) error {
	if lead == nil {
		return fmt.Errorf("%w: lead is nil", ErrInvalidLead)
	}

	if lead.Link == "" {
		return fmt.Errorf("%w: %w", ErrInvalidLead, ErrEmptyLink)
	}

	if lead.Intent.IntentScore < 0 || lead.Intent.IntentScore > 100 {
		return fmt.Errorf("%w: %w", ErrInvalidLead, ErrScoreOutOfRange)
	}

	return nil
}

// ValidateExample validates an IntentExample according to domain rules.
//
// Validation rules:
//   - Bucket must not be empty
//   - Text must not be empty
//
// The Vector is not validated; it is populated by the embedder before storage.
func ValidateExample(example *IntentExample) error {
	if example == nil {
		return fmt.Errorf("%w: example is nil", ErrInvalidExample)
	}

	if example.Bucket == "" {
		return fmt.Errorf("%w: %w", ErrInvalidExample, ErrEmptyBucket)
	}

	if example.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidExample, ErrEmptyExampleText)
	}

	return nil
}
