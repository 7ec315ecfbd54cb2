package chainconfig

import (
	"github.com/graphicscoin/gfxd/infrastructure/logger"
)

var log = logger.RegisterSubSystem("CHCF")
