// Package gateway enumerates the Kashier payment-method variants and resolves
// their merchant credentials from host-provided settings.
package gateway

import "strings"

// bnplPrefix marks buy-now-pay-later method tokens. Kashier expects BNPL
// variants to be pre-selected via defaultMethod instead of showing a chooser.
const bnplPrefix = "bnpl"

// Method is one Kashier payment-method variant. All seven variants share the
// same redirect protocol and differ only in the token sent as allowedMethods.
type Method struct {
	GatewayKey  string
	Token       string
	Label       string
	Description string
}

// IsBNPL reports whether the variant is a buy-now-pay-later sub-brand.
func (m Method) IsBNPL() bool {
	return strings.HasPrefix(m.Token, bnplPrefix)
}

var methods = []Method{
	{GatewayKey: "kashier_card", Token: "card", Label: "Kashier Card", Description: "Pay using Credit/Debit Card"},
	{GatewayKey: "kashier_wallet", Token: "wallet", Label: "Kashier Wallet", Description: "Pay using Mobile Wallet"},
	{GatewayKey: "kashier_fawry", Token: "fawry", Label: "Kashier Fawry", Description: "Pay using Fawry Pay"},
	{GatewayKey: "kashier_installments", Token: "bank_installments", Label: "Kashier Installments", Description: "Pay using Bank Installments"},
	{GatewayKey: "kashier_valu", Token: "bnpl[valu]", Label: "Kashier ValU", Description: "Buy Now Pay Later with ValU"},
	{GatewayKey: "kashier_souhoola", Token: "bnpl[souhoola]", Label: "Kashier Souhoola", Description: "Buy Now Pay Later with Souhoola"},
	{GatewayKey: "kashier_aman", Token: "bnpl[aman]", Label: "Kashier Aman", Description: "Buy Now Pay Later with Aman"},
}

// Methods returns all registered payment-method variants in registration order.
func Methods() []Method {
	out := make([]Method, len(methods))
	copy(out, methods)
	return out
}

// MethodByKey looks up a variant by its gateway key.
func MethodByKey(key string) (Method, bool) {
	for _, m := range methods {
		if m.GatewayKey == key {
			return m, true
		}
	}
	return Method{}, false
}
