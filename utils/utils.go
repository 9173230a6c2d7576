// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/ava-labs/avalanchego/utils/perms"

	formatter "github.com/onsi/ginkgo/v2/formatter"
)

// visibleSecretChars is the number of trailing characters [MaskSecret]
// leaves readable.
const visibleSecretChars = 4

func InitSubDirectory(rootPath string, name string) (string, error) {
	p := path.Join(rootPath, name)
	return p, os.MkdirAll(p, perms.ReadWriteExecute)
}

// MaskSecret hides all but the last few characters of [secret].
func MaskSecret(secret string) string {
	if len(secret) <= visibleSecretChars {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", len(secret)-visibleSecretChars) + secret[len(secret)-visibleSecretChars:]
}

// Fprintf renders [format] with color templates into [w].
//
// e.g.,
//
//	Fprintf(w, "{{green}}{{bold}}hi there %q{{/}}", "aa")
//	Fprintf(w, "{{magenta}}{{bold}}hi therea{{/}} {{cyan}}{{underline}}b{{/}}")
//
// ref.
// https://github.com/onsi/ginkgo/blob/v2.0.0/formatter/formatter.go#L52-L73
func Fprintf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprint(w, formatter.F(format, args...))
}
