package catalog

import "github.com/m04kA/SMC-BarberShop/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
