package model

// HospitalRecord is one row of the hospital directory. Fields are trimmed
// on read; absent cells are empty strings.
type HospitalRecord struct {
	Name       string
	Treatments string
	City       string
	Tier       Tier
}

// DirectoryRow mirrors the Parquet layout of a directory file.
type DirectoryRow struct {
	HospitalName   string  `parquet:"hospital_name"`
	BestTreatments *string `parquet:"best_treatments,optional"`
	City           *string `parquet:"city,optional"`
	HospitalType   *string `parquet:"hospital_type,optional"`
}

// HospitalColumns returns the ordered column names for COPY into
// directory.hospitals.
func HospitalColumns() []string {
	return []string{
		"batch_id",
		"source_row_number",
		"hospital_name",
		"best_treatments",
		"city",
		"hospital_type",
	}
}
