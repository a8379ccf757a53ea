package repository

import (
	"kelurahan-booking/internal/infra"
)

// DBTX aliases the infra-level querier so repository signatures stay short.
type DBTX = infra.DBTX
