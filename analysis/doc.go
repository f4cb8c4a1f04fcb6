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


// Package analysis provides the text primitives shared by every search
// strategy: tokenization, keyword extraction, and heuristic entity, topic,
// and intent detection.
//
// Tokenize is the single tokenizer used across the engine; any change to its
// rules changes every downstream score.
//
// The entity, topic, and intent extractors are regex- and keyword-based
// heuristics, not a trained model. Callers must not treat their output as
// linguistically correct ground truth.
package analysis
