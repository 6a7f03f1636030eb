package notifier

// Embed colors
const (
	ProtectedEmbedColor        = 0x2ECC71 // green
	LightlyProtectedEmbedColor = 0xE67E22 // orange
	ErrorEmbedColor            = 0xE74C3C // red
)

const (
	ReportTitle      = "Website Analysis Result"
	ReportSeparator  = "━━━━━━━━━━━━━"
	ErrorTitle       = "Analysis Failed"
	AlertTitle       = "Lightly Protected Website"
	NoGatewaysText   = "None detected"
	reportFooterText = "gatechk"
)
