package indicators

// Security category labels.
const (
	ChallengeCategory = "captcha"
	EdgeCategory      = "cloudflare"
)

const (
	// EdgeHeaderToken appears in response headers of sites fronted by the edge service.
	EdgeHeaderToken = "cf-ray"
	// QueryLayerMarker signals a general-purpose query API on the page.
	QueryLayerMarker = "graphql"
)

// gatewayCategories keeps near-duplicates such as square/squareup and
// authorize.net/authnet as separate labels.
var gatewayCategories = []Category{
	{Label: "paypal", Patterns: []string{"paypal.com", "paypalobjects.com", "paypal"}},
	{Label: "stripe", Patterns: []string{"stripe.com", "stripe.js", "stripe"}},
	{Label: "braintree", Patterns: []string{"braintreepayments.com", "braintree-api", "braintree"}},
	{Label: "square", Patterns: []string{"squareup.com", "squarecdn.com", "square"}},
	{Label: "magento", Patterns: []string{"magento.com", "mage", "magentopayments"}},
	{Label: "convergepay", Patterns: []string{"converge-NDpay.com", "converge"}},
	{Label: "paysimple", Patterns: []string{"paysimple.com", "paysimple"}},
	{Label: "oceanpayments", Patterns: []string{"oceanpayment.com", "oceanpayments"}},
	{Label: "eprocessing", Patterns: []string{"eprocessingnetwork.com", "eprocessing"}},
	{Label: "hipay", Patterns: []string{"hipay.com", "hipay"}},
	{Label: "worldpay", Patterns: []string{"worldpay.com", "worldpay"}},
	{Label: "cybersource", Patterns: []string{"cybersource.com", "cybersource"}},
	{Label: "payjunction", Patterns: []string{"payjunction.com", "payjunction"}},
	{Label: "authorize.net", Patterns: []string{"authorize.net", "auth.net", "authorizenet"}},
	{Label: "2checkout", Patterns: []string{"2checkout.com", "2co.com", "2checkout"}},
	{Label: "adyen", Patterns: []string{"adyen.com", "adyen"}},
	{Label: "checkout.com", Patterns: []string{"checkout.com", "cko"}},
	{Label: "payflow", Patterns: []string{"payflow", "payflowlink", "paypal.com/payflow"}},
	{Label: "payeezy", Patterns: []string{"payeezy", "firstdata.com"}},
	{Label: "usaepay", Patterns: []string{"usaepay.com", "usaepay"}},
	{Label: "creo", Patterns: []string{"creopay", "creo"}},
	{Label: "squareup", Patterns: []string{"squareup.com", "square"}},
	{Label: "authnet", Patterns: []string{"authorize.net", "authnet"}},
	{Label: "ebizcharge", Patterns: []string{"ebizcharge.com", "ebiz"}},
	{Label: "cpay", Patterns: []string{"cpay.com", "cpay"}},
	{Label: "moneris", Patterns: []string{"moneris.com", "moneris"}},
	{Label: "recurly", Patterns: []string{"recurly.com", "recurly"}},
	{Label: "cardknox", Patterns: []string{"cardknox.com", "cardknox"}},
	{Label: "chargify", Patterns: []string{"chargify.com", "chargify"}},
	{Label: "paytrace", Patterns: []string{"paytrace.com", "paytrace"}},
	{Label: "securepay", Patterns: []string{"securepay.com", "securepay"}},
	{Label: "eway", Patterns: []string{"ewaypayments.com", "eway"}},
	{Label: "blackbaud", Patterns: []string{"blackbaud.com", "blackbaud"}},
	{Label: "lawpay", Patterns: []string{"lawpay.com", "lawpay"}},
	{Label: "clover", Patterns: []string{"clover.com", "clover"}},
	{Label: "cardconnect", Patterns: []string{"cardconnect.com", "cardconnect"}},
	{Label: "bluepay", Patterns: []string{"bluepay.com", "bluepay"}},
	{Label: "fluidpay", Patterns: []string{"fluidpay.com", "fluidpay"}},
	{Label: "chasepaymentech", Patterns: []string{"chasepaymentech.com", "chase"}},
	{Label: "auruspay", Patterns: []string{"auruspay.com", "aurus"}},
	{Label: "sagepayments", Patterns: []string{"sagepay.com", "sagepayments"}},
	{Label: "paycomet", Patterns: []string{"paycomet.com", "paycomet"}},
	{Label: "geomerchant", Patterns: []string{"geomerchant.com", "geomerchant"}},
	{Label: "realexpayments", Patterns: []string{"realexpayments.com", "realex"}},
	{Label: "rocketgateway", Patterns: []string{"rocketgateway.com", "rocketgate"}},
	{Label: "shopify", Patterns: []string{"shopify.com", "shopifycdn", "shop"}},
	{Label: "woocommerce", Patterns: []string{"woocommerce.com", "wp-content", "woo"}},
	{Label: "bigcommerce", Patterns: []string{"bigcommerce.com", "bigcommerce"}},
	{Label: "opencart", Patterns: []string{"opencart.com", "opencart"}},
	{Label: "prestashop", Patterns: []string{"prestashop.com", "presta"}},
	{Label: "razorpay", Patterns: []string{"razorpay.com", "razorpay"}},
}

var securityCategories = []Category{
	{Label: ChallengeCategory, Patterns: []string{"captcha", "protected by recaptcha", "i'm not a robot", "recaptcha/api.js"}},
	{Label: EdgeCategory, Patterns: []string{"cloudflare", "cdnjs.cloudflare.com", "challenges.cloudflare.com"}},
}

// platformCategories is evaluated first-match-wins; the order decides ties.
var platformCategories = []Category{
	{Label: "woocommerce", Patterns: []string{"wp-content", "woocommerce", "woo"}},
	{Label: "shopify", Patterns: []string{"shopify.com", "shopifycdn", "shop"}},
	{Label: "magento", Patterns: []string{"magento", "mage"}},
	{Label: "bigcommerce", Patterns: []string{"bigcommerce.com", "bigcommerce"}},
	{Label: "opencart", Patterns: []string{"opencart.com", "opencart"}},
	{Label: "prestashop", Patterns: []string{"prestashop.com", "presta"}},
}
