package repositories

import (
	"os"
	"testing"

	xlog "github.com/trugenie/go-tally-extraction/internal/common/log"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}
