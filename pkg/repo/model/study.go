package model

import (
	"gorm.io/datatypes"
)

// Study is one GEO series submission with its curated placenta-research
// annotations. GseID is the accession and the sole lookup key for the
// detail view; every other attribute is optional, and a nil pointer means
// the source export had no value (distinct from an empty string).
//
// The record set is written only by the loader; the serving process never
// mutates it.
type Study struct {
	BaseModel

	GseID string `gorm:"type:varchar(32);not null;uniqueIndex:idx_study_gse_id" json:"gse_id"`

	DataType           *string `gorm:"type:varchar(128);index:idx_study_data_type" json:"data_type"`
	Superseries        *string `gorm:"type:text" json:"superseries"`
	SampleSize         *int    `json:"sample_size"`
	Title              *string `gorm:"type:text" json:"title"`
	Organism           *string `gorm:"type:varchar(128);index:idx_study_organism" json:"organism"`
	Characteristics    *string `gorm:"type:text" json:"characteristics"`
	ExtractedMolecule  *string `gorm:"type:varchar(128)" json:"extracted_molecule"`
	ExtractionProtocol *string `gorm:"type:text" json:"extraction_protocol"`
	LibraryStrategy    *string `gorm:"type:varchar(128);index:idx_study_library_strategy" json:"library_strategy"`
	LibrarySource      *string `gorm:"type:varchar(128)" json:"library_source"`
	LibrarySelection   *string `gorm:"type:varchar(128)" json:"library_selection"`
	InstrumentModel    *string `gorm:"type:varchar(255)" json:"instrument_model"`
	AssayDescription   *string `gorm:"type:text" json:"assay_description"`
	DataProcessing     *string `gorm:"type:text" json:"data_processing"`
	PlatformID         *string `gorm:"type:varchar(255);index:idx_study_platform_id" json:"platform_id"`
	SraStudyID         *string `gorm:"type:varchar(64)" json:"sra_study_id"`
	BioprojectID       *string `gorm:"type:varchar(64)" json:"bioproject_id"`
	FileTypes          *string `gorm:"type:text" json:"file_types"`
	SubmissionDate     *string `gorm:"type:varchar(32)" json:"submission_date"`
	LastUpdateDate     *string `gorm:"type:varchar(32)" json:"last_update_date"`
	OrganizationName   *string `gorm:"type:varchar(255)" json:"organization_name"`
	ContactName        *string `gorm:"type:varchar(255)" json:"contact_name"`
	Email              *string `gorm:"type:varchar(255)" json:"email"`
	Country            *string `gorm:"type:varchar(128)" json:"country"`
	Pmid               *string `gorm:"type:varchar(32)" json:"pmid"`
	Pmcid              *string `gorm:"type:varchar(32)" json:"pmcid"`
	Doi                *string `gorm:"type:varchar(255)" json:"doi"`
	SupervisorName     *string `gorm:"type:varchar(255)" json:"supervisor_name"`
	SupervisorEmail    *string `gorm:"type:varchar(255)" json:"supervisor_email"`
	MainTopic          *string `gorm:"type:varchar(255)" json:"main_topic"`

	PregnancyTrimester              *string `gorm:"type:varchar(64);index:idx_study_trimester" json:"pregnancy_trimester"`
	BirthweightProvided             *string `gorm:"type:varchar(64)" json:"birthweight_provided"`
	GaDeliveryProvided              *string `gorm:"type:varchar(64)" json:"ga_delivery_provided"`
	GaDeliveryWeeks                 *string `gorm:"type:varchar(64)" json:"ga_delivery_weeks"`
	GaCollectionProvided            *string `gorm:"type:varchar(64)" json:"ga_collection_provided"`
	GaCollectionWeeks               *string `gorm:"type:varchar(64)" json:"ga_collection_weeks"`
	SexProvided                     *string `gorm:"type:varchar(64)" json:"sex_provided"`
	ParityProvided                  *string `gorm:"type:varchar(64)" json:"parity_provided"`
	GravidityProvided               *string `gorm:"type:varchar(64)" json:"gravidity_provided"`
	OffspringNumberProvided         *string `gorm:"type:varchar(64)" json:"offspring_number_provided"`
	RaceEthnicityProvided           *string `gorm:"type:varchar(64)" json:"race_ethnicity_provided"`
	GeneticAncestryProvided         *string `gorm:"type:varchar(64)" json:"genetic_ancestry_provided"`
	MaternalHeightProvided          *string `gorm:"type:varchar(64)" json:"maternal_height_provided"`
	MaternalWeightProvided          *string `gorm:"type:varchar(64)" json:"maternal_weight_provided"`
	PaternalHeightProvided          *string `gorm:"type:varchar(64)" json:"paternal_height_provided"`
	PaternalWeightProvided          *string `gorm:"type:varchar(64)" json:"paternal_weight_provided"`
	MaternalAgeProvided             *string `gorm:"type:varchar(64)" json:"maternal_age_provided"`
	PaternalAgeProvided             *string `gorm:"type:varchar(64)" json:"paternal_age_provided"`
	PregnancyComplicationsCollected *string `gorm:"type:varchar(64)" json:"pregnancy_complications_collected"`
	DeliveryModeProvided            *string `gorm:"type:varchar(64)" json:"delivery_mode_provided"`
	PregnancyComplicationsList      *string `gorm:"type:text" json:"pregnancy_complications_list"`
	FetalComplicationsListed        *string `gorm:"type:varchar(64)" json:"fetal_complications_listed"`
	FetalComplicationsList          *string `gorm:"type:text" json:"fetal_complications_list"`
	OtherPhenotypes                 *string `gorm:"type:text" json:"other_phenotypes"`
	HospitalCenter                  *string `gorm:"type:varchar(255)" json:"hospital_center"`
	SampleCountry                   *string `gorm:"type:varchar(128)" json:"sample_country"`

	// Raw keeps the source row as delivered by the export, for audit and
	// re-mapping without a fresh download.
	Raw datatypes.JSON `json:"raw,omitempty"`
}

func (*Study) TableName() string { return "geo_studies" }
