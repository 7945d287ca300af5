package scu

import (
	"strings"

	"github.com/jmespath/go-jmespath"
)

func (s *SCUTestSuite) TestErrorDetail() {
	s.Equal("transaction not found", errorDetail([]byte(`{"Message":"transaction not found"}`)))
	s.Equal("bad gateway", errorDetail([]byte(`{"error":{"message":"bad gateway"}}`)))
	s.Equal("Validation failed", errorDetail([]byte(`{"title":"Validation failed","status":400}`)))
	s.Equal(`{"code":7}`, errorDetail([]byte(`{"error":{"code":7}}`)))
	s.Equal("upstream timed out", errorDetail([]byte("  upstream timed out \n")))
	s.Equal("", errorDetail(nil))

	long := errorDetail([]byte(strings.Repeat("x", 1000)))
	s.Len(long, maxDetailLen+3)
}

func (s *SCUTestSuite) TestEvalString() {
	obj := map[string]any{
		"key1": "value1",
		"key2": map[string]any{"sub": 42.0},
	}
	v, err := evalString(detailPath, obj)
	s.NoError(err)
	s.Equal("", v)

	v, err = evalString(mustPath("key2.sub"), obj)
	s.NoError(err)
	s.Equal("42", v)

	v, err = evalString(mustPath("key1"), obj)
	s.NoError(err)
	s.Equal("value1", v)
}

func mustPath(expr string) *jmespath.JMESPath {
	return jmespath.MustCompile(expr)
}
