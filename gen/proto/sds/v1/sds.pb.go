// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: sds/v1/sds.proto

package sdsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Facility struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	ContactEmail  string                 `protobuf:"bytes,3,opt,name=contact_email,json=contactEmail,proto3" json:"contact_email,omitempty"`
	Address       string                 `protobuf:"bytes,4,opt,name=address,proto3" json:"address,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	UpdatedAt     string                 `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC 3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Facility) Reset() {
	*x = Facility{}
	mi := &file_sds_v1_sds_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Facility) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Facility) ProtoMessage() {}

func (x *Facility) ProtoReflect() protoreflect.Message {
	mi := &file_sds_v1_sds_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Facility.ProtoReflect.Descriptor instead.
func (*Facility) Descriptor() ([]byte, []int) {
	return file_sds_v1_sds_proto_rawDescGZIP(), []int{0}
}

func (x *Facility) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Facility) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Facility) GetContactEmail() string {
	if x != nil {
		return x.ContactEmail
	}
	return ""
}

func (x *Facility) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *Facility) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Facility) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type HazardCode struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Code          string                 `protobuf:"bytes,1,opt,name=code,proto3" json:"code,omitempty"`               // e.g. "H225"
	Description   string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"` // catalog text, empty for unknown codes
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HazardCode) Reset() {
	*x = HazardCode{}
	mi := &file_sds_v1_sds_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HazardCode) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HazardCode) ProtoMessage() {}

func (x *HazardCode) ProtoReflect() protoreflect.Message {
	mi := &file_sds_v1_sds_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HazardCode.ProtoReflect.Descriptor instead.
func (*HazardCode) Descriptor() ([]byte, []int) {
	return file_sds_v1_sds_proto_rawDescGZIP(), []int{1}
}

func (x *HazardCode) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *HazardCode) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type PPERequirements struct {
	state                 protoimpl.MessageState `protogen:"open.v1"`
	EyeProtection         []string               `protobuf:"bytes,1,rep,name=eye_protection,json=eyeProtection,proto3" json:"eye_protection,omitempty"`
	HandProtection        []string               `protobuf:"bytes,2,rep,name=hand_protection,json=handProtection,proto3" json:"hand_protection,omitempty"`
	RespiratoryProtection []string               `protobuf:"bytes,3,rep,name=respiratory_protection,json=respiratoryProtection,proto3" json:"respiratory_protection,omitempty"`
	SkinProtection        []string               `protobuf:"bytes,4,rep,name=skin_protection,json=skinProtection,proto3" json:"skin_protection,omitempty"`
	GeneralEquipment      []string               `protobuf:"bytes,5,rep,name=general_equipment,json=generalEquipment,proto3" json:"general_equipment,omitempty"`
	HmisCode              string                 `protobuf:"bytes,6,opt,name=hmis_code,json=hmisCode,proto3" json:"hmis_code,omitempty"` // "A".."K" or "X"
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *PPERequirements) Reset() {
	*x = PPERequirements{}
	mi := &file_sds_v1_sds_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PPERequirements) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PPERequirements) ProtoMessage() {}

func (x *PPERequirements) ProtoReflect() protoreflect.Message {
	mi := &file_sds_v1_sds_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PPERequirements.ProtoReflect.Descriptor instead.
func (*PPERequirements) Descriptor() ([]byte, []int) {
	return file_sds_v1_sds_proto_rawDescGZIP(), []int{2}
}

func (x *PPERequirements) GetEyeProtection() []string {
	if x != nil {
		return x.EyeProtection
	}
	return nil
}

func (x *PPERequirements) GetHandProtection() []string {
	if x != nil {
		return x.HandProtection
	}
	return nil
}

func (x *PPERequirements) GetRespiratoryProtection() []string {
	if x != nil {
		return x.RespiratoryProtection
	}
	return nil
}

func (x *PPERequirements) GetSkinProtection() []string {
	if x != nil {
		return x.SkinProtection
	}
	return nil
}

func (x *PPERequirements) GetGeneralEquipment() []string {
	if x != nil {
		return x.GeneralEquipment
	}
	return nil
}

func (x *PPERequirements) GetHmisCode() string {
	if x != nil {
		return x.HmisCode
	}
	return ""
}

type Ratings struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Health        *int32                 `protobuf:"varint,1,opt,name=health,proto3,oneof" json:"health,omitempty"`
	Flammability  *int32                 `protobuf:"varint,2,opt,name=flammability,proto3,oneof" json:"flammability,omitempty"`
	Reactivity    *int32                 `protobuf:"varint,3,opt,name=reactivity,proto3,oneof" json:"reactivity,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Ratings) Reset() {
	*x = Ratings{}
	mi := &file_sds_v1_sds_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Ratings) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Ratings) ProtoMessage() {}

func (x *Ratings) ProtoReflect() protoreflect.Message {
	mi := &file_sds_v1_sds_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Ratings.ProtoReflect.Descriptor instead.
func (*Ratings) Descriptor() ([]byte, []int) {
	return file_sds_v1_sds_proto_rawDescGZIP(), []int{3}
}

func (x *Ratings) GetHealth() int32 {
	if x != nil && x.Health != nil {
		return *x.Health
	}
	return 0
}

func (x *Ratings) GetFlammability() int32 {
	if x != nil && x.Flammability != nil {
		return *x.Flammability
	}
	return 0
}

func (x *Ratings) GetReactivity() int32 {
	if x != nil && x.Reactivity != nil {
		return *x.Reactivity
	}
	return 0
}

type FirstAid struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SkinContact   string                 `protobuf:"bytes,1,opt,name=skin_contact,json=skinContact,proto3" json:"skin_contact,omitempty"`
	EyeContact    string                 `protobuf:"bytes,2,opt,name=eye_contact,json=eyeContact,proto3" json:"eye_contact,omitempty"`
	Inhalation    string                 `protobuf:"bytes,3,opt,name=inhalation,proto3" json:"inhalation,omitempty"`
	Ingestion     string                 `protobuf:"bytes,4,opt,name=ingestion,proto3" json:"ingestion,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FirstAid) Reset() {
	*x = FirstAid{}
	mi := &file_sds_v1_sds_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FirstAid) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FirstAid) ProtoMessage() {}

func (x *FirstAid) ProtoReflect() protoreflect.Message {
	mi := &file_sds_v1_sds_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FirstAid.ProtoReflect.Descriptor instead.
func (*FirstAid) Descriptor() ([]byte, []int) {
	return file_sds_v1_sds_proto_rawDescGZIP(), []int{4}
}

func (x *FirstAid) GetSkinContact() string {
	if x != nil {
		return x.SkinContact
	}
	return ""
}

func (x *FirstAid) GetEyeContact() string {
	if x != nil {
		return x.EyeContact
	}
	return ""
}

func (x *FirstAid) GetInhalation() string {
	if x != nil {
		return x.Inhalation
	}
	return ""
}

func (x *FirstAid) GetIngestion() string {
	if x != nil {
		return x.Ingestion
	}
	return ""
}

type SDSDocument struct {
	state                   protoimpl.MessageState `protogen:"open.v1"`
	Id                      string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FacilityId              string                 `protobuf:"bytes,2,opt,name=facility_id,json=facilityId,proto3" json:"facility_id,omitempty"`
	ProductName             string                 `protobuf:"bytes,3,opt,name=product_name,json=productName,proto3" json:"product_name,omitempty"`
	Manufacturer            string                 `protobuf:"bytes,4,opt,name=manufacturer,proto3" json:"manufacturer,omitempty"`
	CasNumber               string                 `protobuf:"bytes,5,opt,name=cas_number,json=casNumber,proto3" json:"cas_number,omitempty"`
	SourceUrl               string                 `protobuf:"bytes,6,opt,name=source_url,json=sourceUrl,proto3" json:"source_url,omitempty"`
	BucketUrl               string                 `protobuf:"bytes,7,opt,name=bucket_url,json=bucketUrl,proto3" json:"bucket_url,omitempty"`
	SignalWord              string                 `protobuf:"bytes,8,opt,name=signal_word,json=signalWord,proto3" json:"signal_word,omitempty"` // "DANGER" | "WARNING" | ""
	HCodes                  []*HazardCode          `protobuf:"bytes,9,rep,name=h_codes,json=hCodes,proto3" json:"h_codes,omitempty"`
	Pictograms              []string               `protobuf:"bytes,10,rep,name=pictograms,proto3" json:"pictograms,omitempty"`
	PpeRequirements         *PPERequirements       `protobuf:"bytes,11,opt,name=ppe_requirements,json=ppeRequirements,proto3" json:"ppe_requirements,omitempty"`
	HmisCodes               *Ratings               `protobuf:"bytes,12,opt,name=hmis_codes,json=hmisCodes,proto3" json:"hmis_codes,omitempty"`
	NfpaCodes               *Ratings               `protobuf:"bytes,13,opt,name=nfpa_codes,json=nfpaCodes,proto3" json:"nfpa_codes,omitempty"`
	PrecautionaryStatements []string               `protobuf:"bytes,14,rep,name=precautionary_statements,json=precautionaryStatements,proto3" json:"precautionary_statements,omitempty"`
	FirstAid                *FirstAid              `protobuf:"bytes,15,opt,name=first_aid,json=firstAid,proto3" json:"first_aid,omitempty"`
	HandlingStorage         string                 `protobuf:"bytes,16,opt,name=handling_storage,json=handlingStorage,proto3" json:"handling_storage,omitempty"`
	PhysicalState           string                 `protobuf:"bytes,17,opt,name=physical_state,json=physicalState,proto3" json:"physical_state,omitempty"`
	FlashPoint              string                 `protobuf:"bytes,18,opt,name=flash_point,json=flashPoint,proto3" json:"flash_point,omitempty"`
	ExtractionQualityScore  int32                  `protobuf:"varint,19,opt,name=extraction_quality_score,json=extractionQualityScore,proto3" json:"extraction_quality_score,omitempty"` // 0..100
	AiConfidence            int32                  `protobuf:"varint,20,opt,name=ai_confidence,json=aiConfidence,proto3" json:"ai_confidence,omitempty"`                                 // 0..100, 0 when no AI pass ran
	ExtractionStatus        string                 `protobuf:"bytes,21,opt,name=extraction_status,json=extractionStatus,proto3" json:"extraction_status,omitempty"`
	IsReadable              bool                   `protobuf:"varint,22,opt,name=is_readable,json=isReadable,proto3" json:"is_readable,omitempty"`
	CreatedAt               string                 `protobuf:"bytes,23,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	UpdatedAt               string                 `protobuf:"bytes,24,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC 3339
	unknownFields           protoimpl.UnknownFields
	sizeCache               protoimpl.SizeCache
}

func (x *SDSDocument) Reset() {
	*x = SDSDocument{}
	mi := &file_sds_v1_sds_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SDSDocument) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SDSDocument) ProtoMessage() {}

func (x *SDSDocument) ProtoReflect() protoreflect.Message {
	mi := &file_sds_v1_sds_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SDSDocument.ProtoReflect.Descriptor instead.
func (*SDSDocument) Descriptor() ([]byte, []int) {
	return file_sds_v1_sds_proto_rawDescGZIP(), []int{5}
}

func (x *SDSDocument) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *SDSDocument) GetFacilityId() string {
	if x != nil {
		return x.FacilityId
	}
	return ""
}

func (x *SDSDocument) GetProductName() string {
	if x != nil {
		return x.ProductName
	}
	return ""
}

func (x *SDSDocument) GetManufacturer() string {
	if x != nil {
		return x.Manufacturer
	}
	return ""
}

func (x *SDSDocument) GetCasNumber() string {
	if x != nil {
		return x.CasNumber
	}
	return ""
}

func (x *SDSDocument) GetSourceUrl() string {
	if x != nil {
		return x.SourceUrl
	}
	return ""
}

func (x *SDSDocument) GetBucketUrl() string {
	if x != nil {
		return x.BucketUrl
	}
	return ""
}

func (x *SDSDocument) GetSignalWord() string {
	if x != nil {
		return x.SignalWord
	}
	return ""
}

func (x *SDSDocument) GetHCodes() []*HazardCode {
	if x != nil {
		return x.HCodes
	}
	return nil
}

func (x *SDSDocument) GetPictograms() []string {
	if x != nil {
		return x.Pictograms
	}
	return nil
}

func (x *SDSDocument) GetPpeRequirements() *PPERequirements {
	if x != nil {
		return x.PpeRequirements
	}
	return nil
}

func (x *SDSDocument) GetHmisCodes() *Ratings {
	if x != nil {
		return x.HmisCodes
	}
	return nil
}

func (x *SDSDocument) GetNfpaCodes() *Ratings {
	if x != nil {
		return x.NfpaCodes
	}
	return nil
}

func (x *SDSDocument) GetPrecautionaryStatements() []string {
	if x != nil {
		return x.PrecautionaryStatements
	}
	return nil
}

func (x *SDSDocument) GetFirstAid() *FirstAid {
	if x != nil {
		return x.FirstAid
	}
	return nil
}

func (x *SDSDocument) GetHandlingStorage() string {
	if x != nil {
		return x.HandlingStorage
	}
	return ""
}

func (x *SDSDocument) GetPhysicalState() string {
	if x != nil {
		return x.PhysicalState
	}
	return ""
}

func (x *SDSDocument) GetFlashPoint() string {
	if x != nil {
		return x.FlashPoint
	}
	return ""
}

func (x *SDSDocument) GetExtractionQualityScore() int32 {
	if x != nil {
		return x.ExtractionQualityScore
	}
	return 0
}

func (x *SDSDocument) GetAiConfidence() int32 {
	if x != nil {
		return x.AiConfidence
	}
	return 0
}

func (x *SDSDocument) GetExtractionStatus() string {
	if x != nil {
		return x.ExtractionStatus
	}
	return ""
}

func (x *SDSDocument) GetIsReadable() bool {
	if x != nil {
		return x.IsReadable
	}
	return false
}

func (x *SDSDocument) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *SDSDocument) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ValidationReport struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	IsValid       bool                   `protobuf:"varint,1,opt,name=is_valid,json=isValid,proto3" json:"is_valid,omitempty"`
	Errors        []string               `protobuf:"bytes,2,rep,name=errors,proto3" json:"errors,omitempty"`
	Warnings      []string               `protobuf:"bytes,3,rep,name=warnings,proto3" json:"warnings,omitempty"`
	Suggestions   []string               `protobuf:"bytes,4,rep,name=suggestions,proto3" json:"suggestions,omitempty"`
	OshaCompliant bool                   `protobuf:"varint,5,opt,name=osha_compliant,json=oshaCompliant,proto3" json:"osha_compliant,omitempty"`
	GhsCompliant  bool                   `protobuf:"varint,6,opt,name=ghs_compliant,json=ghsCompliant,proto3" json:"ghs_compliant,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidationReport) Reset() {
	*x = ValidationReport{}
	mi := &file_sds_v1_sds_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidationReport) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidationReport) ProtoMessage() {}

func (x *ValidationReport) ProtoReflect() protoreflect.Message {
	mi := &file_sds_v1_sds_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidationReport.ProtoReflect.Descriptor instead.
func (*ValidationReport) Descriptor() ([]byte, []int) {
	return file_sds_v1_sds_proto_rawDescGZIP(), []int{6}
}

func (x *ValidationReport) GetIsValid() bool {
	if x != nil {
		return x.IsValid
	}
	return false
}

func (x *ValidationReport) GetErrors() []string {
	if x != nil {
		return x.Errors
	}
	return nil
}

func (x *ValidationReport) GetWarnings() []string {
	if x != nil {
		return x.Warnings
	}
	return nil
}

func (x *ValidationReport) GetSuggestions() []string {
	if x != nil {
		return x.Suggestions
	}
	return nil
}

func (x *ValidationReport) GetOshaCompliant() bool {
	if x != nil {
		return x.OshaCompliant
	}
	return false
}

func (x *ValidationReport) GetGhsCompliant() bool {
	if x != nil {
		return x.GhsCompliant
	}
	return false
}

type CreateFacilityRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	ContactEmail  string                 `protobuf:"bytes,2,opt,name=contact_email,json=contactEmail,proto3" json:"contact_email,omitempty"`
	Address       string                 `protobuf:"bytes,3,opt,name=address,proto3" json:"address,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateFacilityRequest) Reset() {
	*x = CreateFacilityRequest{}
	mi := &file_sds_v1_sds_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateFacilityRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateFacilityRequest) ProtoMessage() {}

func (x *CreateFacilityRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sds_v1_sds_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateFacilityRequest.ProtoReflect.Descriptor instead.
func (*CreateFacilityRequest) Descriptor() ([]byte, []int) {
	return file_sds_v1_sds_proto_rawDescGZIP(), []int{7}
}

func (x *CreateFacilityRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateFacilityRequest) GetContactEmail() string {
	if x != nil {
		return x.ContactEmail
	}
	return ""
}

func (x *CreateFacilityRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

type CreateFacilityResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Facility      *Facility              `protobuf:"bytes,1,opt,name=facility,proto3" json:"facility,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateFacilityResponse) Reset() {
	*x = CreateFacilityResponse{}
	mi := &file_sds_v1_sds_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateFacilityResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateFacilityResponse) ProtoMessage() {}

func (x *CreateFacilityResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sds_v1_sds_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateFacilityResponse.ProtoReflect.Descriptor instead.
func (*CreateFacilityResponse) Descriptor() ([]byte, []int) {
	return file_sds_v1_sds_proto_rawDescGZIP(), []int{8}
}

func (x *CreateFacilityResponse) GetFacility() *Facility {
	if x != nil {
		return x.Facility
	}
	return nil
}

type ListFacilitiesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFacilitiesRequest) Reset() {
	*x = ListFacilitiesRequest{}
	mi := &file_sds_v1_sds_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFacilitiesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFacilitiesRequest) ProtoMessage() {}

func (x *ListFacilitiesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sds_v1_sds_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFacilitiesRequest.ProtoReflect.Descriptor instead.
func (*ListFacilitiesRequest) Descriptor() ([]byte, []int) {
	return file_sds_v1_sds_proto_rawDescGZIP(), []int{9}
}

type ListFacilitiesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Facilities    []*Facility            `protobuf:"bytes,1,rep,name=facilities,proto3" json:"facilities,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFacilitiesResponse) Reset() {
	*x = ListFacilitiesResponse{}
	mi := &file_sds_v1_sds_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFacilitiesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFacilitiesResponse) ProtoMessage() {}

func (x *ListFacilitiesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sds_v1_sds_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFacilitiesResponse.ProtoReflect.Descriptor instead.
func (*ListFacilitiesResponse) Descriptor() ([]byte, []int) {
	return file_sds_v1_sds_proto_rawDescGZIP(), []int{10}
}

func (x *ListFacilitiesResponse) GetFacilities() []*Facility {
	if x != nil {
		return x.Facilities
	}
	return nil
}

type TriggerExtractionRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	FacilityId string                 `protobuf:"bytes,1,opt,name=facility_id,json=facilityId,proto3" json:"facility_id,omitempty"`
	// exactly one source: a public URL, a storage bucket URL, or a local path
	SourceUrl      string `protobuf:"bytes,2,opt,name=source_url,json=sourceUrl,proto3" json:"source_url,omitempty"`
	BucketUrl      string `protobuf:"bytes,3,opt,name=bucket_url,json=bucketUrl,proto3" json:"bucket_url,omitempty"`
	LocalPath      string `protobuf:"bytes,4,opt,name=local_path,json=localPath,proto3" json:"local_path,omitempty"`
	ForceReprocess bool   `protobuf:"varint,5,opt,name=force_reprocess,json=forceReprocess,proto3" json:"force_reprocess,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *TriggerExtractionRequest) Reset() {
	*x = TriggerExtractionRequest{}
	mi := &file_sds_v1_sds_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TriggerExtractionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TriggerExtractionRequest) ProtoMessage() {}

func (x *TriggerExtractionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sds_v1_sds_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TriggerExtractionRequest.ProtoReflect.Descriptor instead.
func (*TriggerExtractionRequest) Descriptor() ([]byte, []int) {
	return file_sds_v1_sds_proto_rawDescGZIP(), []int{11}
}

func (x *TriggerExtractionRequest) GetFacilityId() string {
	if x != nil {
		return x.FacilityId
	}
	return ""
}

func (x *TriggerExtractionRequest) GetSourceUrl() string {
	if x != nil {
		return x.SourceUrl
	}
	return ""
}

func (x *TriggerExtractionRequest) GetBucketUrl() string {
	if x != nil {
		return x.BucketUrl
	}
	return ""
}

func (x *TriggerExtractionRequest) GetLocalPath() string {
	if x != nil {
		return x.LocalPath
	}
	return ""
}

func (x *TriggerExtractionRequest) GetForceReprocess() bool {
	if x != nil {
		return x.ForceReprocess
	}
	return false
}

type TriggerExtractionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *SDSDocument           `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	JobId         string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Skipped       bool                   `protobuf:"varint,3,opt,name=skipped,proto3" json:"skipped,omitempty"` // already extracted above threshold and not forced
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TriggerExtractionResponse) Reset() {
	*x = TriggerExtractionResponse{}
	mi := &file_sds_v1_sds_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TriggerExtractionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TriggerExtractionResponse) ProtoMessage() {}

func (x *TriggerExtractionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sds_v1_sds_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TriggerExtractionResponse.ProtoReflect.Descriptor instead.
func (*TriggerExtractionResponse) Descriptor() ([]byte, []int) {
	return file_sds_v1_sds_proto_rawDescGZIP(), []int{12}
}

func (x *TriggerExtractionResponse) GetDocument() *SDSDocument {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *TriggerExtractionResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *TriggerExtractionResponse) GetSkipped() bool {
	if x != nil {
		return x.Skipped
	}
	return false
}

type ValidateDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidateDocumentRequest) Reset() {
	*x = ValidateDocumentRequest{}
	mi := &file_sds_v1_sds_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidateDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidateDocumentRequest) ProtoMessage() {}

func (x *ValidateDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sds_v1_sds_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidateDocumentRequest.ProtoReflect.Descriptor instead.
func (*ValidateDocumentRequest) Descriptor() ([]byte, []int) {
	return file_sds_v1_sds_proto_rawDescGZIP(), []int{13}
}

func (x *ValidateDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type ValidateDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Report        *ValidationReport      `protobuf:"bytes,1,opt,name=report,proto3" json:"report,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidateDocumentResponse) Reset() {
	*x = ValidateDocumentResponse{}
	mi := &file_sds_v1_sds_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidateDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidateDocumentResponse) ProtoMessage() {}

func (x *ValidateDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sds_v1_sds_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidateDocumentResponse.ProtoReflect.Descriptor instead.
func (*ValidateDocumentResponse) Descriptor() ([]byte, []int) {
	return file_sds_v1_sds_proto_rawDescGZIP(), []int{14}
}

func (x *ValidateDocumentResponse) GetReport() *ValidationReport {
	if x != nil {
		return x.Report
	}
	return nil
}

type ProcessBatchRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	FacilityId string                 `protobuf:"bytes,1,opt,name=facility_id,json=facilityId,proto3" json:"facility_id,omitempty"`
	// explicit targets; when empty the service selects low-quality documents
	DocumentIds    []string `protobuf:"bytes,2,rep,name=document_ids,json=documentIds,proto3" json:"document_ids,omitempty"`
	ForceReprocess bool     `protobuf:"varint,3,opt,name=force_reprocess,json=forceReprocess,proto3" json:"force_reprocess,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ProcessBatchRequest) Reset() {
	*x = ProcessBatchRequest{}
	mi := &file_sds_v1_sds_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessBatchRequest) ProtoMessage() {}

func (x *ProcessBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sds_v1_sds_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessBatchRequest.ProtoReflect.Descriptor instead.
func (*ProcessBatchRequest) Descriptor() ([]byte, []int) {
	return file_sds_v1_sds_proto_rawDescGZIP(), []int{15}
}

func (x *ProcessBatchRequest) GetFacilityId() string {
	if x != nil {
		return x.FacilityId
	}
	return ""
}

func (x *ProcessBatchRequest) GetDocumentIds() []string {
	if x != nil {
		return x.DocumentIds
	}
	return nil
}

func (x *ProcessBatchRequest) GetForceReprocess() bool {
	if x != nil {
		return x.ForceReprocess
	}
	return false
}

type BatchError struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BatchError) Reset() {
	*x = BatchError{}
	mi := &file_sds_v1_sds_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BatchError) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BatchError) ProtoMessage() {}

func (x *BatchError) ProtoReflect() protoreflect.Message {
	mi := &file_sds_v1_sds_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BatchError.ProtoReflect.Descriptor instead.
func (*BatchError) Descriptor() ([]byte, []int) {
	return file_sds_v1_sds_proto_rawDescGZIP(), []int{16}
}

func (x *BatchError) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *BatchError) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type ProcessBatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Total         int32                  `protobuf:"varint,1,opt,name=total,proto3" json:"total,omitempty"`
	Succeeded     int32                  `protobuf:"varint,2,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Failed        int32                  `protobuf:"varint,3,opt,name=failed,proto3" json:"failed,omitempty"`
	Skipped       int32                  `protobuf:"varint,4,opt,name=skipped,proto3" json:"skipped,omitempty"`
	Errors        []*BatchError          `protobuf:"bytes,5,rep,name=errors,proto3" json:"errors,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessBatchResponse) Reset() {
	*x = ProcessBatchResponse{}
	mi := &file_sds_v1_sds_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessBatchResponse) ProtoMessage() {}

func (x *ProcessBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sds_v1_sds_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessBatchResponse.ProtoReflect.Descriptor instead.
func (*ProcessBatchResponse) Descriptor() ([]byte, []int) {
	return file_sds_v1_sds_proto_rawDescGZIP(), []int{17}
}

func (x *ProcessBatchResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *ProcessBatchResponse) GetSucceeded() int32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *ProcessBatchResponse) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *ProcessBatchResponse) GetSkipped() int32 {
	if x != nil {
		return x.Skipped
	}
	return 0
}

func (x *ProcessBatchResponse) GetErrors() []*BatchError {
	if x != nil {
		return x.Errors
	}
	return nil
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_sds_v1_sds_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sds_v1_sds_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_sds_v1_sds_proto_rawDescGZIP(), []int{18}
}

func (x *GetDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *SDSDocument           `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_sds_v1_sds_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sds_v1_sds_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_sds_v1_sds_proto_rawDescGZIP(), []int{19}
}

func (x *GetDocumentResponse) GetDocument() *SDSDocument {
	if x != nil {
		return x.Document
	}
	return nil
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FacilityId    string                 `protobuf:"bytes,1,opt,name=facility_id,json=facilityId,proto3" json:"facility_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"` // optional filter
	Limit         int32                  `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,4,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_sds_v1_sds_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sds_v1_sds_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_sds_v1_sds_proto_rawDescGZIP(), []int{20}
}

func (x *ListDocumentsRequest) GetFacilityId() string {
	if x != nil {
		return x.FacilityId
	}
	return ""
}

func (x *ListDocumentsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListDocumentsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListDocumentsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*SDSDocument         `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_sds_v1_sds_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sds_v1_sds_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_sds_v1_sds_proto_rawDescGZIP(), []int{21}
}

func (x *ListDocumentsResponse) GetDocuments() []*SDSDocument {
	if x != nil {
		return x.Documents
	}
	return nil
}

type ExportDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FacilityId    string                 `protobuf:"bytes,1,opt,name=facility_id,json=facilityId,proto3" json:"facility_id,omitempty"`
	OutputPath    string                 `protobuf:"bytes,2,opt,name=output_path,json=outputPath,proto3" json:"output_path,omitempty"` // optional; server picks a temp path when empty
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentsRequest) Reset() {
	*x = ExportDocumentsRequest{}
	mi := &file_sds_v1_sds_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsRequest) ProtoMessage() {}

func (x *ExportDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sds_v1_sds_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ExportDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_sds_v1_sds_proto_rawDescGZIP(), []int{22}
}

func (x *ExportDocumentsRequest) GetFacilityId() string {
	if x != nil {
		return x.FacilityId
	}
	return ""
}

func (x *ExportDocumentsRequest) GetOutputPath() string {
	if x != nil {
		return x.OutputPath
	}
	return ""
}

type ExportDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FilePath      string                 `protobuf:"bytes,1,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	RowCount      int32                  `protobuf:"varint,2,opt,name=row_count,json=rowCount,proto3" json:"row_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentsResponse) Reset() {
	*x = ExportDocumentsResponse{}
	mi := &file_sds_v1_sds_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsResponse) ProtoMessage() {}

func (x *ExportDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sds_v1_sds_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ExportDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_sds_v1_sds_proto_rawDescGZIP(), []int{23}
}

func (x *ExportDocumentsResponse) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

func (x *ExportDocumentsResponse) GetRowCount() int32 {
	if x != nil {
		return x.RowCount
	}
	return 0
}

var File_sds_v1_sds_proto protoreflect.FileDescriptor

const file_sds_v1_sds_proto_rawDesc = "" +
	"\n" +
	"\x10sds/v1/sds.proto\x12\x06sds.v1\"\xab\x01\n" +
	"\bFacility\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12#\n" +
	"\rcontact_email\x18\x03 \x01(\tR\fcontactEmail\x12\x18\n" +
	"\aaddress\x18\x04 \x01(\tR\aaddress\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x06 \x01(\tR\tupdatedAt\"B\n" +
	"\n" +
	"HazardCode\x12\x12\n" +
	"\x04code\x18\x01 \x01(\tR\x04code\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\"\x8b\x02\n" +
	"\x0fPPERequirements\x12%\n" +
	"\x0eeye_protection\x18\x01 \x03(\tR\reyeProtection\x12'\n" +
	"\x0fhand_protection\x18\x02 \x03(\tR\x0ehandProtection\x125\n" +
	"\x16respiratory_protection\x18\x03 \x03(\tR\x15respiratoryProtection\x12'\n" +
	"\x0fskin_protection\x18\x04 \x03(\tR\x0eskinProtection\x12+\n" +
	"\x11general_equipment\x18\x05 \x03(\tR\x10generalEquipment\x12\x1b\n" +
	"\thmis_code\x18\x06 \x01(\tR\bhmisCode\"\x9f\x01\n" +
	"\aRatings\x12\x1b\n" +
	"\x06health\x18\x01 \x01(\x05H\x00R\x06health\x88\x01\x01\x12'\n" +
	"\fflammability\x18\x02 \x01(\x05H\x01R\fflammability\x88\x01\x01\x12#\n" +
	"\n" +
	"reactivity\x18\x03 \x01(\x05H\x02R\n" +
	"reactivity\x88\x01\x01B\t\n" +
	"\a_healthB\x0f\n" +
	"\r_flammabilityB\r\n" +
	"\v_reactivity\"\x8c\x01\n" +
	"\bFirstAid\x12!\n" +
	"\fskin_contact\x18\x01 \x01(\tR\vskinContact\x12\x1f\n" +
	"\veye_contact\x18\x02 \x01(\tR\n" +
	"eyeContact\x12\x1e\n" +
	"\n" +
	"inhalation\x18\x03 \x01(\tR\n" +
	"inhalation\x12\x1c\n" +
	"\tingestion\x18\x04 \x01(\tR\tingestion\"\xbc\a\n" +
	"\vSDSDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vfacility_id\x18\x02 \x01(\tR\n" +
	"facilityId\x12!\n" +
	"\fproduct_name\x18\x03 \x01(\tR\vproductName\x12\"\n" +
	"\fmanufacturer\x18\x04 \x01(\tR\fmanufacturer\x12\x1d\n" +
	"\n" +
	"cas_number\x18\x05 \x01(\tR\tcasNumber\x12\x1d\n" +
	"\n" +
	"source_url\x18\x06 \x01(\tR\tsourceUrl\x12\x1d\n" +
	"\n" +
	"bucket_url\x18\a \x01(\tR\tbucketUrl\x12\x1f\n" +
	"\vsignal_word\x18\b \x01(\tR\n" +
	"signalWord\x12+\n" +
	"\ah_codes\x18\t \x03(\v2\x12.sds.v1.HazardCodeR\x06hCodes\x12\x1e\n" +
	"\n" +
	"pictograms\x18\n" +
	" \x03(\tR\n" +
	"pictograms\x12B\n" +
	"\x10ppe_requirements\x18\v \x01(\v2\x17.sds.v1.PPERequirementsR\x0fppeRequirements\x12.\n" +
	"\n" +
	"hmis_codes\x18\f \x01(\v2\x0f.sds.v1.RatingsR\thmisCodes\x12.\n" +
	"\n" +
	"nfpa_codes\x18\r \x01(\v2\x0f.sds.v1.RatingsR\tnfpaCodes\x129\n" +
	"\x18precautionary_statements\x18\x0e \x03(\tR\x17precautionaryStatements\x12-\n" +
	"\tfirst_aid\x18\x0f \x01(\v2\x10.sds.v1.FirstAidR\bfirstAid\x12)\n" +
	"\x10handling_storage\x18\x10 \x01(\tR\x0fhandlingStorage\x12%\n" +
	"\x0ephysical_state\x18\x11 \x01(\tR\rphysicalState\x12\x1f\n" +
	"\vflash_point\x18\x12 \x01(\tR\n" +
	"flashPoint\x128\n" +
	"\x18extraction_quality_score\x18\x13 \x01(\x05R\x16extractionQualityScore\x12#\n" +
	"\rai_confidence\x18\x14 \x01(\x05R\faiConfidence\x12+\n" +
	"\x11extraction_status\x18\x15 \x01(\tR\x10extractionStatus\x12\x1f\n" +
	"\vis_readable\x18\x16 \x01(\bR\n" +
	"isReadable\x12\x1d\n" +
	"\n" +
	"created_at\x18\x17 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x18 \x01(\tR\tupdatedAt\"\xcf\x01\n" +
	"\x10ValidationReport\x12\x19\n" +
	"\bis_valid\x18\x01 \x01(\bR\aisValid\x12\x16\n" +
	"\x06errors\x18\x02 \x03(\tR\x06errors\x12\x1a\n" +
	"\bwarnings\x18\x03 \x03(\tR\bwarnings\x12 \n" +
	"\vsuggestions\x18\x04 \x03(\tR\vsuggestions\x12%\n" +
	"\x0eosha_compliant\x18\x05 \x01(\bR\roshaCompliant\x12#\n" +
	"\rghs_compliant\x18\x06 \x01(\bR\fghsCompliant\"j\n" +
	"\x15CreateFacilityRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12#\n" +
	"\rcontact_email\x18\x02 \x01(\tR\fcontactEmail\x12\x18\n" +
	"\aaddress\x18\x03 \x01(\tR\aaddress\"F\n" +
	"\x16CreateFacilityResponse\x12,\n" +
	"\bfacility\x18\x01 \x01(\v2\x10.sds.v1.FacilityR\bfacility\"\x17\n" +
	"\x15ListFacilitiesRequest\"J\n" +
	"\x16ListFacilitiesResponse\x120\n" +
	"\n" +
	"facilities\x18\x01 \x03(\v2\x10.sds.v1.FacilityR\n" +
	"facilities\"\xc1\x01\n" +
	"\x18TriggerExtractionRequest\x12\x1f\n" +
	"\vfacility_id\x18\x01 \x01(\tR\n" +
	"facilityId\x12\x1d\n" +
	"\n" +
	"source_url\x18\x02 \x01(\tR\tsourceUrl\x12\x1d\n" +
	"\n" +
	"bucket_url\x18\x03 \x01(\tR\tbucketUrl\x12\x1d\n" +
	"\n" +
	"local_path\x18\x04 \x01(\tR\tlocalPath\x12'\n" +
	"\x0fforce_reprocess\x18\x05 \x01(\bR\x0eforceReprocess\"}\n" +
	"\x19TriggerExtractionResponse\x12/\n" +
	"\bdocument\x18\x01 \x01(\v2\x13.sds.v1.SDSDocumentR\bdocument\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x12\x18\n" +
	"\askipped\x18\x03 \x01(\bR\askipped\":\n" +
	"\x17ValidateDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"L\n" +
	"\x18ValidateDocumentResponse\x120\n" +
	"\x06report\x18\x01 \x01(\v2\x18.sds.v1.ValidationReportR\x06report\"\x82\x01\n" +
	"\x13ProcessBatchRequest\x12\x1f\n" +
	"\vfacility_id\x18\x01 \x01(\tR\n" +
	"facilityId\x12!\n" +
	"\fdocument_ids\x18\x02 \x03(\tR\vdocumentIds\x12'\n" +
	"\x0fforce_reprocess\x18\x03 \x01(\bR\x0eforceReprocess\"G\n" +
	"\n" +
	"BatchError\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\"\xa8\x01\n" +
	"\x14ProcessBatchResponse\x12\x14\n" +
	"\x05total\x18\x01 \x01(\x05R\x05total\x12\x1c\n" +
	"\tsucceeded\x18\x02 \x01(\x05R\tsucceeded\x12\x16\n" +
	"\x06failed\x18\x03 \x01(\x05R\x06failed\x12\x18\n" +
	"\askipped\x18\x04 \x01(\x05R\askipped\x12*\n" +
	"\x06errors\x18\x05 \x03(\v2\x12.sds.v1.BatchErrorR\x06errors\"5\n" +
	"\x12GetDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"F\n" +
	"\x13GetDocumentResponse\x12/\n" +
	"\bdocument\x18\x01 \x01(\v2\x13.sds.v1.SDSDocumentR\bdocument\"}\n" +
	"\x14ListDocumentsRequest\x12\x1f\n" +
	"\vfacility_id\x18\x01 \x01(\tR\n" +
	"facilityId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x14\n" +
	"\x05limit\x18\x03 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x04 \x01(\x05R\x06offset\"J\n" +
	"\x15ListDocumentsResponse\x121\n" +
	"\tdocuments\x18\x01 \x03(\v2\x13.sds.v1.SDSDocumentR\tdocuments\"Z\n" +
	"\x16ExportDocumentsRequest\x12\x1f\n" +
	"\vfacility_id\x18\x01 \x01(\tR\n" +
	"facilityId\x12\x1f\n" +
	"\voutput_path\x18\x02 \x01(\tR\n" +
	"outputPath\"S\n" +
	"\x17ExportDocumentsResponse\x12\x1b\n" +
	"\tfile_path\x18\x01 \x01(\tR\bfilePath\x12\x1b\n" +
	"\trow_count\x18\x02 \x01(\x05R\browCount2\x94\x05\n" +
	"\n" +
	"SDSService\x12O\n" +
	"\x0eCreateFacility\x12\x1d.sds.v1.CreateFacilityRequest\x1a\x1e.sds.v1.CreateFacilityResponse\x12O\n" +
	"\x0eListFacilities\x12\x1d.sds.v1.ListFacilitiesRequest\x1a\x1e.sds.v1.ListFacilitiesResponse\x12X\n" +
	"\x11TriggerExtraction\x12 .sds.v1.TriggerExtractionRequest\x1a!.sds.v1.TriggerExtractionResponse\x12U\n" +
	"\x10ValidateDocument\x12\x1f.sds.v1.ValidateDocumentRequest\x1a .sds.v1.ValidateDocumentResponse\x12I\n" +
	"\fProcessBatch\x12\x1b.sds.v1.ProcessBatchRequest\x1a\x1c.sds.v1.ProcessBatchResponse\x12F\n" +
	"\vGetDocument\x12\x1a.sds.v1.GetDocumentRequest\x1a\x1b.sds.v1.GetDocumentResponse\x12L\n" +
	"\rListDocuments\x12\x1c.sds.v1.ListDocumentsRequest\x1a\x1d.sds.v1.ListDocumentsResponse\x12R\n" +
	"\x0fExportDocuments\x12\x1e.sds.v1.ExportDocumentsRequest\x1a\x1f.sds.v1.ExportDocumentsResponseB9Z7github.com/qrsafety/sds-pipeline/gen/proto/sds/v1;sdsv1b\x06proto3"

var (
	file_sds_v1_sds_proto_rawDescOnce sync.Once
	file_sds_v1_sds_proto_rawDescData []byte
)

func file_sds_v1_sds_proto_rawDescGZIP() []byte {
	file_sds_v1_sds_proto_rawDescOnce.Do(func() {
		file_sds_v1_sds_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_sds_v1_sds_proto_rawDesc), len(file_sds_v1_sds_proto_rawDesc)))
	})
	return file_sds_v1_sds_proto_rawDescData
}

var file_sds_v1_sds_proto_msgTypes = make([]protoimpl.MessageInfo, 24)
var file_sds_v1_sds_proto_goTypes = []any{
	(*Facility)(nil),                  // 0: sds.v1.Facility
	(*HazardCode)(nil),                // 1: sds.v1.HazardCode
	(*PPERequirements)(nil),           // 2: sds.v1.PPERequirements
	(*Ratings)(nil),                   // 3: sds.v1.Ratings
	(*FirstAid)(nil),                  // 4: sds.v1.FirstAid
	(*SDSDocument)(nil),               // 5: sds.v1.SDSDocument
	(*ValidationReport)(nil),          // 6: sds.v1.ValidationReport
	(*CreateFacilityRequest)(nil),     // 7: sds.v1.CreateFacilityRequest
	(*CreateFacilityResponse)(nil),    // 8: sds.v1.CreateFacilityResponse
	(*ListFacilitiesRequest)(nil),     // 9: sds.v1.ListFacilitiesRequest
	(*ListFacilitiesResponse)(nil),    // 10: sds.v1.ListFacilitiesResponse
	(*TriggerExtractionRequest)(nil),  // 11: sds.v1.TriggerExtractionRequest
	(*TriggerExtractionResponse)(nil), // 12: sds.v1.TriggerExtractionResponse
	(*ValidateDocumentRequest)(nil),   // 13: sds.v1.ValidateDocumentRequest
	(*ValidateDocumentResponse)(nil),  // 14: sds.v1.ValidateDocumentResponse
	(*ProcessBatchRequest)(nil),       // 15: sds.v1.ProcessBatchRequest
	(*BatchError)(nil),                // 16: sds.v1.BatchError
	(*ProcessBatchResponse)(nil),      // 17: sds.v1.ProcessBatchResponse
	(*GetDocumentRequest)(nil),        // 18: sds.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),       // 19: sds.v1.GetDocumentResponse
	(*ListDocumentsRequest)(nil),      // 20: sds.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),     // 21: sds.v1.ListDocumentsResponse
	(*ExportDocumentsRequest)(nil),    // 22: sds.v1.ExportDocumentsRequest
	(*ExportDocumentsResponse)(nil),   // 23: sds.v1.ExportDocumentsResponse
}
var file_sds_v1_sds_proto_depIdxs = []int32{
	1,  // 0: sds.v1.SDSDocument.h_codes:type_name -> sds.v1.HazardCode
	2,  // 1: sds.v1.SDSDocument.ppe_requirements:type_name -> sds.v1.PPERequirements
	3,  // 2: sds.v1.SDSDocument.hmis_codes:type_name -> sds.v1.Ratings
	3,  // 3: sds.v1.SDSDocument.nfpa_codes:type_name -> sds.v1.Ratings
	4,  // 4: sds.v1.SDSDocument.first_aid:type_name -> sds.v1.FirstAid
	0,  // 5: sds.v1.CreateFacilityResponse.facility:type_name -> sds.v1.Facility
	0,  // 6: sds.v1.ListFacilitiesResponse.facilities:type_name -> sds.v1.Facility
	5,  // 7: sds.v1.TriggerExtractionResponse.document:type_name -> sds.v1.SDSDocument
	6,  // 8: sds.v1.ValidateDocumentResponse.report:type_name -> sds.v1.ValidationReport
	16, // 9: sds.v1.ProcessBatchResponse.errors:type_name -> sds.v1.BatchError
	5,  // 10: sds.v1.GetDocumentResponse.document:type_name -> sds.v1.SDSDocument
	5,  // 11: sds.v1.ListDocumentsResponse.documents:type_name -> sds.v1.SDSDocument
	7,  // 12: sds.v1.SDSService.CreateFacility:input_type -> sds.v1.CreateFacilityRequest
	9,  // 13: sds.v1.SDSService.ListFacilities:input_type -> sds.v1.ListFacilitiesRequest
	11, // 14: sds.v1.SDSService.TriggerExtraction:input_type -> sds.v1.TriggerExtractionRequest
	13, // 15: sds.v1.SDSService.ValidateDocument:input_type -> sds.v1.ValidateDocumentRequest
	15, // 16: sds.v1.SDSService.ProcessBatch:input_type -> sds.v1.ProcessBatchRequest
	18, // 17: sds.v1.SDSService.GetDocument:input_type -> sds.v1.GetDocumentRequest
	20, // 18: sds.v1.SDSService.ListDocuments:input_type -> sds.v1.ListDocumentsRequest
	22, // 19: sds.v1.SDSService.ExportDocuments:input_type -> sds.v1.ExportDocumentsRequest
	8,  // 20: sds.v1.SDSService.CreateFacility:output_type -> sds.v1.CreateFacilityResponse
	10, // 21: sds.v1.SDSService.ListFacilities:output_type -> sds.v1.ListFacilitiesResponse
	12, // 22: sds.v1.SDSService.TriggerExtraction:output_type -> sds.v1.TriggerExtractionResponse
	14, // 23: sds.v1.SDSService.ValidateDocument:output_type -> sds.v1.ValidateDocumentResponse
	17, // 24: sds.v1.SDSService.ProcessBatch:output_type -> sds.v1.ProcessBatchResponse
	19, // 25: sds.v1.SDSService.GetDocument:output_type -> sds.v1.GetDocumentResponse
	21, // 26: sds.v1.SDSService.ListDocuments:output_type -> sds.v1.ListDocumentsResponse
	23, // 27: sds.v1.SDSService.ExportDocuments:output_type -> sds.v1.ExportDocumentsResponse
	20, // [20:28] is the sub-list for method output_type
	12, // [12:20] is the sub-list for method input_type
	12, // [12:12] is the sub-list for extension type_name
	12, // [12:12] is the sub-list for extension extendee
	0,  // [0:12] is the sub-list for field type_name
}

func init() { file_sds_v1_sds_proto_init() }
func file_sds_v1_sds_proto_init() {
	if File_sds_v1_sds_proto != nil {
		return
	}
	file_sds_v1_sds_proto_msgTypes[3].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_sds_v1_sds_proto_rawDesc), len(file_sds_v1_sds_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   24,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_sds_v1_sds_proto_goTypes,
		DependencyIndexes: file_sds_v1_sds_proto_depIdxs,
		MessageInfos:      file_sds_v1_sds_proto_msgTypes,
	}.Build()
	File_sds_v1_sds_proto = out.File
	file_sds_v1_sds_proto_goTypes = nil
	file_sds_v1_sds_proto_depIdxs = nil
}
