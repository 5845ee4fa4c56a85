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

import "errors"

// Domain validation errors
var (
	// ErrInvalidSearchQuery indicates a SearchQuery failed validation.
	ErrInvalidSearchQuery = errors.New("invalid search query")

	// ErrInvalidLead indicates a Lead failed validation.
	ErrInvalidLead = errors.New("invalid lead")

	// ErrInvalidExample indicates an IntentExample failed validation.
	ErrInvalidExample = errors.New("invalid intent example")

	// ErrEmptyIndustry indicates the Industry field is empty.
	ErrEmptyIndustry = errors.New("industry cannot be empty")

	// ErrEmptyBuyingSignals indicates the BuyingSignals field is empty.
	ErrEmptyBuyingSignals = errors.New("buying signals cannot be empty")

	// ErrEmptyLink indicates the lead Link field is empty.
	ErrEmptyLink = errors.New("link cannot be empty")

	// ErrScoreOutOfRange indicates an intent score outside [0,100].
	ErrScoreOutOfRange = errors.New("intent score must be between 0 and 100")

	// ErrEmptyBucket indicates the example Bucket field is empty.
	ErrEmptyBucket = errors.New("bucket cannot be empty")

	// ErrEmptyExampleText indicates the example Text field is empty.
	ErrEmptyExampleText = errors.New("example text cannot be empty")
)
