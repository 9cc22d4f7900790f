package orgfeed

import "embed"

//go:embed templates/emails
var EmailFS embed.FS
