/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package origin identifies where a foreign error came from.
//
// A unified error deliberately drops the typed identity of the errors it
// wraps. What remains machine-usable is the package that declared the
// foreign error type: "io.fs" for a *fs.PathError, "encoding.json" for a
// *json.SyntaxError. Package mapper matches these origins by prefix to pick
// transport statuses.
//
// Origins are:
//
//   - lowercased;
//   - dot-separated (import path slashes become dots);
//   - underscore-separated inside a segment (dashes become underscores);
//   - optional: Empty means "unknown" or "not a foreign error".
package origin
