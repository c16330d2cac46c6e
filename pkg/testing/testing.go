package testing

import (
	"os"
	"path"
	"runtime"
)

func init() {
	// Tests run from the project root so relative paths (logs/, testdata/,
	// .env) resolve the same way they do for cmd/server.
	//
	//   import (
	//     _ "liyu1981.xyz/energy-monitor-service/pkg/testing"
	//   )

	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "..", "..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}
