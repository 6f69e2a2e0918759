/* Copyright 2025 Dnote Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package output provides functions to print informations on the terminal
// in a consistent manner
package output

import (
	"github.com/dnote/linediff/pkg/cli/document"
	"github.com/dnote/linediff/pkg/cli/log"
)

// DocumentInfo prints the information of a loaded document in debug mode
func DocumentInfo(doc document.Document) {
	log.Debug("%s: %d lines, longest %d\n", doc.Path, doc.LineCount(), doc.MaxLineLength())
}
