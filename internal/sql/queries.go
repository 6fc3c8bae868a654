package sql

import (
	"embed"
)

//go:embed migrations/*.sql
var Migrations embed.FS

//go:embed queries/register_batch.sql
var RegisterBatch string

//go:embed queries/lookup_batch_by_sha.sql
var LookupBatchBySHA string

//go:embed queries/finish_batch.sql
var FinishBatch string

//go:embed queries/deactivate_other_batches.sql
var DeactivateOtherBatches string

//go:embed queries/activate_batch.sql
var ActivateBatch string

//go:embed queries/delete_batch.sql
var DeleteBatch string

//go:embed queries/active_batch.sql
var ActiveBatch string

//go:embed queries/select_hospitals.sql
var SelectHospitals string
