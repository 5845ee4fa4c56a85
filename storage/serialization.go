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


package storage

import (
	"github.com/NageshProgrammer/leadequator/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	var id core.ID
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalLead serializes a Lead to bytes.
func MarshalLead(lead *core.Lead) []byte {
	buf := make([]byte, core.LeadMUS.Size(*lead))
	core.LeadMUS.Marshal(*lead, buf)
	return buf
}

// UnmarshalLead deserializes a Lead from bytes.
func UnmarshalLead(data []byte) (*core.Lead, error) {
	lead, _, err := core.LeadMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// MarshalExample serializes an IntentExample to bytes.
func MarshalExample(example *core.IntentExample) []byte {
	buf := make([]byte, core.IntentExampleMUS.Size(*example))
	core.IntentExampleMUS.Marshal(*example, buf)
	return buf
}

// UnmarshalExample deserializes an IntentExample from bytes.
func UnmarshalExample(data []byte) (*core.IntentExample, error) {
	example, _, err := core.IntentExampleMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &example, nil
}
