package topics

import "embed"

const embeddedDir = "data"

//go:embed data/*.json
var embedded embed.FS
