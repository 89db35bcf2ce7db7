package catalog

// ColumnInfo returns a copy of the column → display-label map so callers
// cannot mutate the shared table.
func ColumnInfo() map[string]string {
	out := make(map[string]string, len(columnLabels))
	for k, v := range columnLabels {
		out[k] = v
	}
	return out
}

// columnLabels maps stored column names to the labels the detail page
// renders. Order is up to the presentation layer.
var columnLabels = map[string]string{
	"gse_id":                            "GEO Series ID",
	"data_type":                         "Data Type",
	"superseries":                       "SuperSeries",
	"sample_size":                       "Sample Size",
	"title":                             "Title",
	"organism":                          "Organism",
	"characteristics":                   "Characteristics",
	"extracted_molecule":                "Extracted Molecule",
	"extraction_protocol":               "Extraction Protocol",
	"library_strategy":                  "Library Strategy",
	"library_source":                    "Library Source",
	"library_selection":                 "Library Selection",
	"instrument_model":                  "Instrument Model",
	"assay_description":                 "Assay Description",
	"data_processing":                   "Data Processing",
	"platform_id":                       "Platform ID",
	"sra_study_id":                      "SRA Study ID",
	"bioproject_id":                     "BioProject ID",
	"file_types":                        "File Types",
	"submission_date":                   "Submission Date",
	"last_update_date":                  "Last Update Date",
	"organization_name":                 "Organization",
	"contact_name":                      "Contact Name",
	"email":                             "Email",
	"country":                           "Country",
	"pmid":                              "PubMed ID",
	"pmcid":                             "PMC ID",
	"doi":                               "DOI",
	"supervisor_name":                   "Supervisor/PI Name",
	"supervisor_email":                  "Supervisor/PI Email",
	"main_topic":                        "Main Topic",
	"pregnancy_trimester":               "Pregnancy Trimester",
	"birthweight_provided":              "Birthweight Provided",
	"ga_delivery_provided":              "GA at Delivery Provided",
	"ga_delivery_weeks":                 "GA at Delivery (weeks)",
	"ga_collection_provided":            "GA at Collection Provided",
	"ga_collection_weeks":               "GA at Collection (weeks)",
	"sex_provided":                      "Sex of Offspring Provided",
	"parity_provided":                   "Parity Provided",
	"gravidity_provided":                "Gravidity Provided",
	"offspring_number_provided":         "Offspring Number Provided",
	"race_ethnicity_provided":           "Race/Ethnicity Provided",
	"genetic_ancestry_provided":         "Genetic Ancestry Provided",
	"maternal_height_provided":          "Maternal Height Provided",
	"maternal_weight_provided":          "Maternal Weight Provided",
	"paternal_height_provided":          "Paternal Height Provided",
	"paternal_weight_provided":          "Paternal Weight Provided",
	"maternal_age_provided":             "Maternal Age Provided",
	"paternal_age_provided":             "Paternal Age Provided",
	"pregnancy_complications_collected": "Pregnancy Complications Collected",
	"delivery_mode_provided":            "Delivery Mode Provided",
	"pregnancy_complications_list":      "Pregnancy Complications",
	"fetal_complications_listed":        "Fetal Complications Listed",
	"fetal_complications_list":          "Fetal Complications",
	"other_phenotypes":                  "Other Phenotypes",
	"hospital_center":                   "Hospital/Center",
	"sample_country":                    "Sample Collection Country",
}
