//go:build windows || odbc

package setup

import (
	// registers the "odbc" database/sql driver; needs the ODBC driver manager at build time
	_ "github.com/alexbrainman/odbc"
)
