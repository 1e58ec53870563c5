package tvis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFCallsFatalfOnlyWhenErrIsNotNil(t *testing.T) {
	exit, _, _ := RunTest(t)

	F(nil)
	exit.Want(t, -1)

	func() {
		defer exit.Recover()
		F(errors.New("boom"))
	}()
	exit.Want(t, ExitCode)
}

func TestInputOrFileDefaultsToStdin(t *testing.T) {
	_, in, _ := RunTest(t)
	in.WriteString("hello")

	rc, err := InputOrFile("")
	assert.NoError(t, err)
	defer rc.Close()
	buf := make([]byte, 5)
	n, _ := rc.Read(buf)
	assert.Equal(t, "hello", string(buf[:n]))
}

func TestInputOrFileMissingPath(t *testing.T) {
	RunTest(t)
	_, err := InputOrFile("/nonexistent/path/that/should/not/exist")
	assert.Error(t, err)
}
