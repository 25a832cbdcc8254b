package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// endereços malformados são rejeitados antes de qualquer consulta DNS
func TestIsEmailDomainValidMalformed(t *testing.T) {
	cases := []string{
		"",
		"sem-arroba",
		"arroba-no-fim@",
		"@",
	}

	for _, email := range cases {
		assert.False(t, IsEmailDomainValid(email), "email=%q", email)
	}
}
