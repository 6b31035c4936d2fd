// Package verification issues human-readable verification codes and
// requests their delivery by email.
package verification

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"net/url"
	"strings"

	"github.com/radblock/gifgate/internal/common"
	"github.com/radblock/gifgate/internal/server/mail"
	"github.com/radblock/gifgate/internal/server/models"
)

const codeWords = 3

// Dispatcher generates verification codes and sends the verification
// link through the email collaborator.
type Dispatcher struct {
	mailer  mail.Mailer
	baseURL string
}

func NewDispatcher(mailer mail.Mailer, baseURL string) *Dispatcher {
	return &Dispatcher{mailer: mailer, baseURL: baseURL}
}

// IssueCode generates a fresh multi-word code and emails the record's
// address a link carrying email and code. On a send failure it returns
// common.ErrDelivery and the caller must not persist the pending
// transition, so the operation stays retryable.
func (d *Dispatcher) IssueCode(ctx context.Context, rec *models.UserRecord) (string, error) {
	code, err := MakeCode()
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrCrypto, err)
	}

	link := fmt.Sprintf("%s?email=%s&code=%s", d.baseURL,
		url.QueryEscape(rec.Email), url.QueryEscape(code))

	htmlBody := fmt.Sprintf(
		`<p>Almost there. Click <a href="%s">this link</a> to verify your address, or enter the code <b>%s</b> on the site.</p>`,
		link, code)
	textBody := fmt.Sprintf(
		"Almost there. Open %s to verify your address, or enter the code %s on the site.",
		link, code)

	if err := d.mailer.Send(ctx, rec.Email, "verify your email address", htmlBody, textBody); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDelivery, err)
	}

	return code, nil
}

// MakeCode joins three random dictionary words with dashes,
// e.g. "red-fox-lamp". Comparison elsewhere is exact and case-sensitive.
func MakeCode() (string, error) {
	max := big.NewInt(int64(len(wordList)))

	parts := make([]string, codeWords)
	for i := range parts {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		parts[i] = wordList[n.Int64()]
	}

	return strings.Join(parts, "-"), nil
}
