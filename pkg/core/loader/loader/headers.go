package loader

import (
	"strings"
)

// headerMapping translates the verbose export headers to stored column
// names. Headers not listed here fall back to snake_casing, so curated
// columns whose header already matches their column name map themselves.
var headerMapping = map[string]string{
	"GEO Series ID (GSE___)": "gse_id",
	"Data type":              "data_type",
	"SuperSeries, list GEO Series that are part of the SuperSeries": "superseries",
	"Sample size (placenta)":               "sample_size",
	"Title":                                "title",
	"Organism":                             "organism",
	"Characteristics":                      "characteristics",
	"Extracted molecule":                   "extracted_molecule",
	"Extraction protocol":                  "extraction_protocol",
	"Library Strategy":                     "library_strategy",
	"Library source":                       "library_source",
	"Library selection":                    "library_selection",
	"Instrument model":                     "instrument_model",
	"Assay description":                    "assay_description",
	"Data processing":                      "data_processing",
	"Platform ID (list)":                   "platform_id",
	"SRA Study ID (raw data)":              "sra_study_id",
	"BioSample/BioProject ID":              "bioproject_id",
	"File types/resources provided (list)": "file_types",
	"Submission date":                      "submission_date",
	"Last update date":                     "last_update_date",
	"Organization name":                    "organization_name",
	"Contact name":                         "contact_name",
	"E-mail(s)":                            "email",
	"Country":                              "country",
	"PMID":                                 "pmid",
	"PMCID":                                "pmcid",
	"DOI":                                  "doi",
	"Supervisor/PI Name":                   "supervisor_name",
	"Supervisor/PI Email":                  "supervisor_email",
	"Main Topic":                           "main_topic",
	"Pregnancy Trimester":                  "pregnancy_trimester",
	"Birthweight Provided":                 "birthweight_provided",
	"GA at Delivery Provided":              "ga_delivery_provided",
	"GA at Delivery (weeks)":               "ga_delivery_weeks",
	"GA at Collection Provided":            "ga_collection_provided",
	"GA at Collection (weeks)":             "ga_collection_weeks",
	"Sex of Offspring Provided":            "sex_provided",
	"Parity Provided":                      "parity_provided",
	"Gravidity Provided":                   "gravidity_provided",
	"Offspring Number Provided":            "offspring_number_provided",
	"Race/Ethnicity Provided":              "race_ethnicity_provided",
	"Genetic Ancestry Provided":            "genetic_ancestry_provided",
	"Maternal Height Provided":             "maternal_height_provided",
	"Maternal Weight Provided":             "maternal_weight_provided",
	"Paternal Height Provided":             "paternal_height_provided",
	"Paternal Weight Provided":             "paternal_weight_provided",
	"Maternal Age Provided":                "maternal_age_provided",
	"Paternal Age Provided":                "paternal_age_provided",
	"Pregnancy Complications Collected":    "pregnancy_complications_collected",
	"Delivery Mode Provided":               "delivery_mode_provided",
	"Pregnancy Complications":              "pregnancy_complications_list",
	"Fetal Complications Listed":           "fetal_complications_listed",
	"Fetal Complications":                  "fetal_complications_list",
	"Other Phenotypes":                     "other_phenotypes",
	"Hospital/Center":                      "hospital_center",
	"Sample Collection Country":            "sample_country",
}

// knownColumns is the set of stored column names a snake_cased header may
// resolve to. Anything else in the export is ignored.
var knownColumns = func() map[string]struct{} {
	set := make(map[string]struct{}, len(headerMapping))
	for _, col := range headerMapping {
		set[col] = struct{}{}
	}
	return set
}()

// canonicalColumn resolves one export header to a stored column name, or ""
// when the header is unrecognized.
func canonicalColumn(header string) string {
	header = strings.TrimSpace(header)
	if col, ok := headerMapping[header]; ok {
		return col
	}

	snake := strings.ToLower(header)
	for _, cut := range []string{"(", "["} {
		if i := strings.Index(snake, cut); i >= 0 {
			snake = snake[:i]
		}
	}
	snake = strings.TrimSpace(snake)
	snake = strings.NewReplacer(" ", "_", "-", "_", "/", "_").Replace(snake)
	if _, ok := knownColumns[snake]; ok {
		return snake
	}
	return ""
}
