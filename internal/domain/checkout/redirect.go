package checkout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/go-querystring/query"

	"github.com/Khaled152/tutor-kashier-integration/internal/domain/gateway"
)

// Redirect is a fully-formed signed redirect to the Kashier hosted payment page.
type Redirect struct {
	URL            string
	OrderReference string
	Amount         string
	Currency       string
	Hash           string
	Mode           string
}

// Builder constructs signed redirect URLs. Construction is pure; issuing the
// actual HTTP redirect is the caller's effect.
type Builder struct {
	baseURL  string
	platform string
}

// NewBuilder creates a Builder targeting the given Kashier payment page base
// URL. platform is echoed in the metadata as ecommercePlatform.
func NewBuilder(baseURL, platform string) *Builder {
	return &Builder{
		baseURL:  strings.TrimRight(baseURL, "/"),
		platform: platform,
	}
}

// redirectQuery is the outbound query-parameter contract with Kashier.
type redirectQuery struct {
	MerchantID       string `url:"merchantId"`
	OrderID          string `url:"orderId"`
	Amount           string `url:"amount"`
	Currency         string `url:"currency"`
	Hash             string `url:"hash"`
	Mode             string `url:"mode"`
	MetaData         string `url:"metaData"`
	MerchantRedirect string `url:"merchantRedirect"`
	ServerWebhook    string `url:"serverWebhook"`
	FailureRedirect  string `url:"failureRedirect"`
	RedirectMethod   string `url:"redirectMethod"`
	Display          string `url:"display"`
	AllowedMethods   string `url:"allowedMethods,omitempty"`
	DefaultMethod    string `url:"defaultMethod,omitempty"`
}

type redirectMetaData struct {
	EcommercePlatform string `json:"ecommercePlatform"`
	OrderID           string `json:"OrderId"`
	CustomerEmail     string `json:"CustomerEmail"`
	CustomerName      string `json:"CustomerName"`
}

// Build assembles and signs the redirect for one payment attempt. callbackURL
// is the variant's webhook endpoint, reused as both the browser return URL and
// the server-to-server webhook target. now feeds the order reference timestamp
// that disambiguates retries of the same order.
func (b *Builder) Build(creds gateway.Credentials, method gateway.Method, req PaymentRequest, callbackURL string, now time.Time) (Redirect, error) {
	if !creds.Configured() {
		return Redirect{}, fmt.Errorf("%s: %w", method.Label, gateway.ErrNotConfigured)
	}

	// Fixed-point with exactly 2 fraction digits and "." separator; any other
	// rendering breaks the signature on the Kashier side.
	amount := req.Amount.StringFixed(2)
	currency := strings.ToUpper(req.Currency)

	orderReference := fmt.Sprintf("%s-%d", req.OrderID, now.Unix())
	hash := signPaymentPath(creds.MerchantID, orderReference, amount, currency, creds.APIKey)

	metaData, err := encodeMetaData(redirectMetaData{
		EcommercePlatform: b.platform,
		OrderID:           req.OrderID,
		CustomerEmail:     req.CustomerEmail,
		CustomerName:      req.CustomerName,
	})
	if err != nil {
		return Redirect{}, fmt.Errorf("encode metadata: %w", err)
	}

	params := redirectQuery{
		MerchantID:       creds.MerchantID,
		OrderID:          orderReference,
		Amount:           amount,
		Currency:         currency,
		Hash:             hash,
		Mode:             creds.Mode(),
		MetaData:         metaData,
		MerchantRedirect: callbackURL,
		ServerWebhook:    callbackURL,
		FailureRedirect:  "true",
		RedirectMethod:   "get",
		Display:          "en",
		AllowedMethods:   method.Token,
	}

	// Kashier shows a method chooser unless a BNPL sub-brand is pre-selected.
	if method.IsBNPL() {
		params.DefaultMethod = method.Token
	}

	values, err := query.Values(params)
	if err != nil {
		return Redirect{}, fmt.Errorf("encode redirect query: %w", err)
	}

	return Redirect{
		URL:            b.baseURL + "?" + values.Encode(),
		OrderReference: orderReference,
		Amount:         amount,
		Currency:       currency,
		Hash:           hash,
		Mode:           creds.Mode(),
	}, nil
}

// encodeMetaData marshals without HTML escaping so slashes and non-ASCII pass
// through verbatim; percent-encoding happens once, in the query encoder.
func encodeMetaData(md redirectMetaData) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(md); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
