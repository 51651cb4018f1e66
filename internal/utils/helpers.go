package utils

import (
	"math"
	"time"

	"github.com/qrsafety/sds-pipeline/gen/ent"
	sdspb "github.com/qrsafety/sds-pipeline/gen/proto/sds/v1"
	"github.com/qrsafety/sds-pipeline/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToFacility(e *ent.Facility) *entity.Facility {
	return &entity.Facility{
		ID:           e.ID,
		Name:         e.Name,
		ContactEmail: e.ContactEmail,
		Address:      e.Address,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToSDSDocument(e *ent.SDSDocument) *entity.SDSDocument {
	doc := &entity.SDSDocument{
		ID:           e.ID,
		FacilityID:   e.FacilityID,
		ProductName:  e.ProductName,
		Manufacturer: strOrEmpty(e.Manufacturer),
		CASNumber:    strOrEmpty(e.CasNumber),
		SourceURL:    e.SourceURL,
		BucketURL:    e.BucketURL,

		SignalWord:              strOrEmpty(e.SignalWord),
		HCodes:                  e.HCodes,
		Pictograms:              e.Pictograms,
		HMISCodes:               e.HmisCodes,
		NFPACodes:               e.NfpaCodes,
		PrecautionaryStatements: e.PrecautionaryStatements,
		HandlingStorage:         strOrEmpty(e.HandlingStorage),
		PhysicalState:           strOrEmpty(e.PhysicalState),
		FlashPoint:              strOrEmpty(e.FlashPoint),

		ExtractionQualityScore: e.ExtractionQualityScore,
		ExtractionStatus:       e.ExtractionStatus,
		IsReadable:             e.IsReadable,
		CreatedAt:              e.CreatedAt,
		UpdatedAt:              e.UpdatedAt,
	}
	if e.PpeRequirements.HMISCode != "" {
		ppe := e.PpeRequirements
		doc.PPERequirements = &ppe
	}
	if !e.FirstAid.Empty() {
		fa := e.FirstAid
		doc.FirstAid = &fa
	}
	if e.AiConfidence != nil {
		doc.AIConfidence = int(math.Round(float64(*e.AiConfidence)))
	}
	return doc
}

func ToExtractJob(e *ent.ExtractJob) *entity.ExtractJob {
	job := &entity.ExtractJob{
		ID:           e.ID,
		FacilityID:   e.FacilityID,
		SourceRef:    e.SourceRef,
		Format:       e.Format,
		StartedAt:    e.StartedAt,
		FinishedAt:   e.FinishedAt,
		Status:       e.Status,
		ErrorMessage: e.ErrorMessage,
		Confidence:   e.ExtractionConfidence,
		NeedsReview:  e.NeedsReview,
		RawText:      e.RawText,
		Method:       e.Method,
		ModelParams:  e.ModelParams,
	}
	if e.DocumentID != nil {
		job.DocumentID = *e.DocumentID
	}
	return job
}

func ToPBFacility(f *entity.Facility) *sdspb.Facility {
	return &sdspb.Facility{
		Id:           f.ID.String(),
		Name:         f.Name,
		ContactEmail: strOrEmpty(f.ContactEmail),
		Address:      strOrEmpty(f.Address),
		CreatedAt:    f.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    f.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBDocument(d *entity.SDSDocument) *sdspb.SDSDocument {
	out := &sdspb.SDSDocument{
		Id:                      d.ID.String(),
		FacilityId:              d.FacilityID.String(),
		ProductName:             d.ProductName,
		Manufacturer:            d.Manufacturer,
		CasNumber:               d.CASNumber,
		SourceUrl:               strOrEmpty(d.SourceURL),
		BucketUrl:               strOrEmpty(d.BucketURL),
		SignalWord:              d.SignalWord,
		Pictograms:              d.Pictograms,
		PrecautionaryStatements: d.PrecautionaryStatements,
		HandlingStorage:         d.HandlingStorage,
		PhysicalState:           d.PhysicalState,
		FlashPoint:              d.FlashPoint,
		ExtractionQualityScore:  int32(d.ExtractionQualityScore),
		AiConfidence:            int32(d.AIConfidence),
		ExtractionStatus:        d.ExtractionStatus,
		IsReadable:              d.IsReadable,
		CreatedAt:               d.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:               d.UpdatedAt.UTC().Format(time.RFC3339),
	}
	for _, hc := range d.HCodes {
		out.HCodes = append(out.HCodes, &sdspb.HazardCode{Code: hc.Code, Description: hc.Description})
	}
	if d.PPERequirements != nil {
		out.PpeRequirements = &sdspb.PPERequirements{
			EyeProtection:         d.PPERequirements.EyeProtection,
			HandProtection:        d.PPERequirements.HandProtection,
			RespiratoryProtection: d.PPERequirements.RespiratoryProtection,
			SkinProtection:        d.PPERequirements.SkinProtection,
			GeneralEquipment:      d.PPERequirements.GeneralEquipment,
			HmisCode:              d.PPERequirements.HMISCode,
		}
	}
	out.HmisCodes = toPBRatings(d.HMISCodes)
	out.NfpaCodes = toPBRatings(d.NFPACodes)
	if d.FirstAid != nil {
		out.FirstAid = &sdspb.FirstAid{
			SkinContact: d.FirstAid.SkinContact,
			EyeContact:  d.FirstAid.EyeContact,
			Inhalation:  d.FirstAid.Inhalation,
			Ingestion:   d.FirstAid.Ingestion,
		}
	}
	return out
}

func toPBRatings(r *entity.Ratings) *sdspb.Ratings {
	if r == nil {
		return nil
	}
	out := &sdspb.Ratings{}
	if r.Health != nil {
		v := int32(*r.Health)
		out.Health = &v
	}
	if r.Flammability != nil {
		v := int32(*r.Flammability)
		out.Flammability = &v
	}
	if r.Reactivity != nil {
		v := int32(*r.Reactivity)
		out.Reactivity = &v
	}
	return out
}
