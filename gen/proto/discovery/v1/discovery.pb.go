// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: discovery/v1/discovery.proto

package discoveryv1

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

type ScrapeDiscoveredURLsRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	UrlIds         []string               `protobuf:"bytes,1,rep,name=url_ids,json=urlIds,proto3" json:"url_ids,omitempty"`
	ManufacturerId string                 `protobuf:"bytes,2,opt,name=manufacturer_id,json=manufacturerId,proto3" json:"manufacturer_id,omitempty"`
	MaxWorkers     int32                  `protobuf:"varint,3,opt,name=max_workers,json=maxWorkers,proto3" json:"max_workers,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ScrapeDiscoveredURLsRequest) Reset() {
	*x = ScrapeDiscoveredURLsRequest{}
	mi := &file_discovery_v1_discovery_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScrapeDiscoveredURLsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScrapeDiscoveredURLsRequest) ProtoMessage() {}

func (x *ScrapeDiscoveredURLsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_discovery_v1_discovery_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScrapeDiscoveredURLsRequest.ProtoReflect.Descriptor instead.
func (*ScrapeDiscoveredURLsRequest) Descriptor() ([]byte, []int) {
	return file_discovery_v1_discovery_proto_rawDescGZIP(), []int{0}
}

func (x *ScrapeDiscoveredURLsRequest) GetUrlIds() []string {
	if x != nil {
		return x.UrlIds
	}
	return nil
}

func (x *ScrapeDiscoveredURLsRequest) GetManufacturerId() string {
	if x != nil {
		return x.ManufacturerId
	}
	return ""
}

func (x *ScrapeDiscoveredURLsRequest) GetMaxWorkers() int32 {
	if x != nil {
		return x.MaxWorkers
	}
	return 0
}

type ScrapeDiscoveredURLsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BatchId       string                 `protobuf:"bytes,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	Accepted      int32                  `protobuf:"varint,2,opt,name=accepted,proto3" json:"accepted,omitempty"`
	Rejected      int32                  `protobuf:"varint,3,opt,name=rejected,proto3" json:"rejected,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScrapeDiscoveredURLsResponse) Reset() {
	*x = ScrapeDiscoveredURLsResponse{}
	mi := &file_discovery_v1_discovery_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScrapeDiscoveredURLsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScrapeDiscoveredURLsResponse) ProtoMessage() {}

func (x *ScrapeDiscoveredURLsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_discovery_v1_discovery_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScrapeDiscoveredURLsResponse.ProtoReflect.Descriptor instead.
func (*ScrapeDiscoveredURLsResponse) Descriptor() ([]byte, []int) {
	return file_discovery_v1_discovery_proto_rawDescGZIP(), []int{1}
}

func (x *ScrapeDiscoveredURLsResponse) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

func (x *ScrapeDiscoveredURLsResponse) GetAccepted() int32 {
	if x != nil {
		return x.Accepted
	}
	return 0
}

func (x *ScrapeDiscoveredURLsResponse) GetRejected() int32 {
	if x != nil {
		return x.Rejected
	}
	return 0
}

type RunDuplicateDetectionRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// optional scope
	ManufacturerId string `protobuf:"bytes,1,opt,name=manufacturer_id,json=manufacturerId,proto3" json:"manufacturer_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *RunDuplicateDetectionRequest) Reset() {
	*x = RunDuplicateDetectionRequest{}
	mi := &file_discovery_v1_discovery_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunDuplicateDetectionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunDuplicateDetectionRequest) ProtoMessage() {}

func (x *RunDuplicateDetectionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_discovery_v1_discovery_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunDuplicateDetectionRequest.ProtoReflect.Descriptor instead.
func (*RunDuplicateDetectionRequest) Descriptor() ([]byte, []int) {
	return file_discovery_v1_discovery_proto_rawDescGZIP(), []int{2}
}

func (x *RunDuplicateDetectionRequest) GetManufacturerId() string {
	if x != nil {
		return x.ManufacturerId
	}
	return ""
}

type RunDuplicateDetectionResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Checked         int32                  `protobuf:"varint,1,opt,name=checked,proto3" json:"checked,omitempty"`
	DuplicatesFound int32                  `protobuf:"varint,2,opt,name=duplicates_found,json=duplicatesFound,proto3" json:"duplicates_found,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *RunDuplicateDetectionResponse) Reset() {
	*x = RunDuplicateDetectionResponse{}
	mi := &file_discovery_v1_discovery_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunDuplicateDetectionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunDuplicateDetectionResponse) ProtoMessage() {}

func (x *RunDuplicateDetectionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_discovery_v1_discovery_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunDuplicateDetectionResponse.ProtoReflect.Descriptor instead.
func (*RunDuplicateDetectionResponse) Descriptor() ([]byte, []int) {
	return file_discovery_v1_discovery_proto_rawDescGZIP(), []int{3}
}

func (x *RunDuplicateDetectionResponse) GetChecked() int32 {
	if x != nil {
		return x.Checked
	}
	return 0
}

func (x *RunDuplicateDetectionResponse) GetDuplicatesFound() int32 {
	if x != nil {
		return x.DuplicatesFound
	}
	return 0
}

type UpdateURLDuplicateStatusRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DuplicateStatus string                 `protobuf:"bytes,2,opt,name=duplicate_status,json=duplicateStatus,proto3" json:"duplicate_status,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *UpdateURLDuplicateStatusRequest) Reset() {
	*x = UpdateURLDuplicateStatusRequest{}
	mi := &file_discovery_v1_discovery_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateURLDuplicateStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateURLDuplicateStatusRequest) ProtoMessage() {}

func (x *UpdateURLDuplicateStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_discovery_v1_discovery_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateURLDuplicateStatusRequest.ProtoReflect.Descriptor instead.
func (*UpdateURLDuplicateStatusRequest) Descriptor() ([]byte, []int) {
	return file_discovery_v1_discovery_proto_rawDescGZIP(), []int{4}
}

func (x *UpdateURLDuplicateStatusRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateURLDuplicateStatusRequest) GetDuplicateStatus() string {
	if x != nil {
		return x.DuplicateStatus
	}
	return ""
}

type LinkURLToMachineRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UrlId         string                 `protobuf:"bytes,1,opt,name=url_id,json=urlId,proto3" json:"url_id,omitempty"`
	MachineId     string                 `protobuf:"bytes,2,opt,name=machine_id,json=machineId,proto3" json:"machine_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LinkURLToMachineRequest) Reset() {
	*x = LinkURLToMachineRequest{}
	mi := &file_discovery_v1_discovery_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LinkURLToMachineRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LinkURLToMachineRequest) ProtoMessage() {}

func (x *LinkURLToMachineRequest) ProtoReflect() protoreflect.Message {
	mi := &file_discovery_v1_discovery_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LinkURLToMachineRequest.ProtoReflect.Descriptor instead.
func (*LinkURLToMachineRequest) Descriptor() ([]byte, []int) {
	return file_discovery_v1_discovery_proto_rawDescGZIP(), []int{5}
}

func (x *LinkURLToMachineRequest) GetUrlId() string {
	if x != nil {
		return x.UrlId
	}
	return ""
}

func (x *LinkURLToMachineRequest) GetMachineId() string {
	if x != nil {
		return x.MachineId
	}
	return ""
}

type ListDiscoveredURLsRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	ManufacturerId  string                 `protobuf:"bytes,1,opt,name=manufacturer_id,json=manufacturerId,proto3" json:"manufacturer_id,omitempty"`
	Status          string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	DuplicateStatus string                 `protobuf:"bytes,3,opt,name=duplicate_status,json=duplicateStatus,proto3" json:"duplicate_status,omitempty"`
	ExcludeAutoSkip bool                   `protobuf:"varint,4,opt,name=exclude_auto_skip,json=excludeAutoSkip,proto3" json:"exclude_auto_skip,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ListDiscoveredURLsRequest) Reset() {
	*x = ListDiscoveredURLsRequest{}
	mi := &file_discovery_v1_discovery_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDiscoveredURLsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDiscoveredURLsRequest) ProtoMessage() {}

func (x *ListDiscoveredURLsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_discovery_v1_discovery_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDiscoveredURLsRequest.ProtoReflect.Descriptor instead.
func (*ListDiscoveredURLsRequest) Descriptor() ([]byte, []int) {
	return file_discovery_v1_discovery_proto_rawDescGZIP(), []int{6}
}

func (x *ListDiscoveredURLsRequest) GetManufacturerId() string {
	if x != nil {
		return x.ManufacturerId
	}
	return ""
}

func (x *ListDiscoveredURLsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListDiscoveredURLsRequest) GetDuplicateStatus() string {
	if x != nil {
		return x.DuplicateStatus
	}
	return ""
}

func (x *ListDiscoveredURLsRequest) GetExcludeAutoSkip() bool {
	if x != nil {
		return x.ExcludeAutoSkip
	}
	return false
}

type ListDiscoveredURLsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Urls          []*DiscoveredURL       `protobuf:"bytes,1,rep,name=urls,proto3" json:"urls,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDiscoveredURLsResponse) Reset() {
	*x = ListDiscoveredURLsResponse{}
	mi := &file_discovery_v1_discovery_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDiscoveredURLsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDiscoveredURLsResponse) ProtoMessage() {}

func (x *ListDiscoveredURLsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_discovery_v1_discovery_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDiscoveredURLsResponse.ProtoReflect.Descriptor instead.
func (*ListDiscoveredURLsResponse) Descriptor() ([]byte, []int) {
	return file_discovery_v1_discovery_proto_rawDescGZIP(), []int{7}
}

func (x *ListDiscoveredURLsResponse) GetUrls() []*DiscoveredURL {
	if x != nil {
		return x.Urls
	}
	return nil
}

type ClassifyPendingURLsRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ManufacturerId string                 `protobuf:"bytes,1,opt,name=manufacturer_id,json=manufacturerId,proto3" json:"manufacturer_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ClassifyPendingURLsRequest) Reset() {
	*x = ClassifyPendingURLsRequest{}
	mi := &file_discovery_v1_discovery_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClassifyPendingURLsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClassifyPendingURLsRequest) ProtoMessage() {}

func (x *ClassifyPendingURLsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_discovery_v1_discovery_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClassifyPendingURLsRequest.ProtoReflect.Descriptor instead.
func (*ClassifyPendingURLsRequest) Descriptor() ([]byte, []int) {
	return file_discovery_v1_discovery_proto_rawDescGZIP(), []int{8}
}

func (x *ClassifyPendingURLsRequest) GetManufacturerId() string {
	if x != nil {
		return x.ManufacturerId
	}
	return ""
}

type ClassifyPendingURLsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Classified    int32                  `protobuf:"varint,1,opt,name=classified,proto3" json:"classified,omitempty"`
	AutoSkipped   int32                  `protobuf:"varint,2,opt,name=auto_skipped,json=autoSkipped,proto3" json:"auto_skipped,omitempty"`
	Failed        int32                  `protobuf:"varint,3,opt,name=failed,proto3" json:"failed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClassifyPendingURLsResponse) Reset() {
	*x = ClassifyPendingURLsResponse{}
	mi := &file_discovery_v1_discovery_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClassifyPendingURLsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClassifyPendingURLsResponse) ProtoMessage() {}

func (x *ClassifyPendingURLsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_discovery_v1_discovery_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClassifyPendingURLsResponse.ProtoReflect.Descriptor instead.
func (*ClassifyPendingURLsResponse) Descriptor() ([]byte, []int) {
	return file_discovery_v1_discovery_proto_rawDescGZIP(), []int{9}
}

func (x *ClassifyPendingURLsResponse) GetClassified() int32 {
	if x != nil {
		return x.Classified
	}
	return 0
}

func (x *ClassifyPendingURLsResponse) GetAutoSkipped() int32 {
	if x != nil {
		return x.AutoSkipped
	}
	return 0
}

func (x *ClassifyPendingURLsResponse) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

type URLRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *URLRequest) Reset() {
	*x = URLRequest{}
	mi := &file_discovery_v1_discovery_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *URLRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*URLRequest) ProtoMessage() {}

func (x *URLRequest) ProtoReflect() protoreflect.Message {
	mi := &file_discovery_v1_discovery_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use URLRequest.ProtoReflect.Descriptor instead.
func (*URLRequest) Descriptor() ([]byte, []int) {
	return file_discovery_v1_discovery_proto_rawDescGZIP(), []int{10}
}

func (x *URLRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DiscoveredURLResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Url           *DiscoveredURL         `protobuf:"bytes,1,opt,name=url,proto3" json:"url,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DiscoveredURLResponse) Reset() {
	*x = DiscoveredURLResponse{}
	mi := &file_discovery_v1_discovery_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DiscoveredURLResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DiscoveredURLResponse) ProtoMessage() {}

func (x *DiscoveredURLResponse) ProtoReflect() protoreflect.Message {
	mi := &file_discovery_v1_discovery_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DiscoveredURLResponse.ProtoReflect.Descriptor instead.
func (*DiscoveredURLResponse) Descriptor() ([]byte, []int) {
	return file_discovery_v1_discovery_proto_rawDescGZIP(), []int{11}
}

func (x *DiscoveredURLResponse) GetUrl() *DiscoveredURL {
	if x != nil {
		return x.Url
	}
	return nil
}

type ExportReviewRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	ManufacturerId  string                 `protobuf:"bytes,1,opt,name=manufacturer_id,json=manufacturerId,proto3" json:"manufacturer_id,omitempty"`
	DuplicateStatus string                 `protobuf:"bytes,2,opt,name=duplicate_status,json=duplicateStatus,proto3" json:"duplicate_status,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ExportReviewRequest) Reset() {
	*x = ExportReviewRequest{}
	mi := &file_discovery_v1_discovery_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReviewRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReviewRequest) ProtoMessage() {}

func (x *ExportReviewRequest) ProtoReflect() protoreflect.Message {
	mi := &file_discovery_v1_discovery_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReviewRequest.ProtoReflect.Descriptor instead.
func (*ExportReviewRequest) Descriptor() ([]byte, []int) {
	return file_discovery_v1_discovery_proto_rawDescGZIP(), []int{12}
}

func (x *ExportReviewRequest) GetManufacturerId() string {
	if x != nil {
		return x.ManufacturerId
	}
	return ""
}

func (x *ExportReviewRequest) GetDuplicateStatus() string {
	if x != nil {
		return x.DuplicateStatus
	}
	return ""
}

type ExportReviewResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReviewResponse) Reset() {
	*x = ExportReviewResponse{}
	mi := &file_discovery_v1_discovery_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReviewResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReviewResponse) ProtoMessage() {}

func (x *ExportReviewResponse) ProtoReflect() protoreflect.Message {
	mi := &file_discovery_v1_discovery_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReviewResponse.ProtoReflect.Descriptor instead.
func (*ExportReviewResponse) Descriptor() ([]byte, []int) {
	return file_discovery_v1_discovery_proto_rawDescGZIP(), []int{13}
}

func (x *ExportReviewResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type DiscoveredURL struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ManufacturerId     string                 `protobuf:"bytes,2,opt,name=manufacturer_id,json=manufacturerId,proto3" json:"manufacturer_id,omitempty"`
	Url                string                 `protobuf:"bytes,3,opt,name=url,proto3" json:"url,omitempty"`
	Category           string                 `protobuf:"bytes,4,opt,name=category,proto3" json:"category,omitempty"`
	Status             string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	DiscoveredAt       string                 `protobuf:"bytes,6,opt,name=discovered_at,json=discoveredAt,proto3" json:"discovered_at,omitempty"`
	ScrapedAt          string                 `protobuf:"bytes,7,opt,name=scraped_at,json=scrapedAt,proto3" json:"scraped_at,omitempty"`
	ErrorMessage       string                 `protobuf:"bytes,8,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	DuplicateStatus    string                 `protobuf:"bytes,9,opt,name=duplicate_status,json=duplicateStatus,proto3" json:"duplicate_status,omitempty"`
	ExistingMachineId  string                 `protobuf:"bytes,10,opt,name=existing_machine_id,json=existingMachineId,proto3" json:"existing_machine_id,omitempty"`
	SimilarityScore    float64                `protobuf:"fixed64,11,opt,name=similarity_score,json=similarityScore,proto3" json:"similarity_score,omitempty"`
	HasSimilarityScore bool                   `protobuf:"varint,12,opt,name=has_similarity_score,json=hasSimilarityScore,proto3" json:"has_similarity_score,omitempty"`
	DuplicateReason    string                 `protobuf:"bytes,13,opt,name=duplicate_reason,json=duplicateReason,proto3" json:"duplicate_reason,omitempty"`
	CheckedAt          string                 `protobuf:"bytes,14,opt,name=checked_at,json=checkedAt,proto3" json:"checked_at,omitempty"`
	MlClassification   string                 `protobuf:"bytes,15,opt,name=ml_classification,json=mlClassification,proto3" json:"ml_classification,omitempty"`
	MlConfidence       float64                `protobuf:"fixed64,16,opt,name=ml_confidence,json=mlConfidence,proto3" json:"ml_confidence,omitempty"`
	HasMlConfidence    bool                   `protobuf:"varint,17,opt,name=has_ml_confidence,json=hasMlConfidence,proto3" json:"has_ml_confidence,omitempty"`
	MlReason           string                 `protobuf:"bytes,18,opt,name=ml_reason,json=mlReason,proto3" json:"ml_reason,omitempty"`
	MachineType        string                 `protobuf:"bytes,19,opt,name=machine_type,json=machineType,proto3" json:"machine_type,omitempty"`
	ShouldAutoSkip     bool                   `protobuf:"varint,20,opt,name=should_auto_skip,json=shouldAutoSkip,proto3" json:"should_auto_skip,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *DiscoveredURL) Reset() {
	*x = DiscoveredURL{}
	mi := &file_discovery_v1_discovery_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DiscoveredURL) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DiscoveredURL) ProtoMessage() {}

func (x *DiscoveredURL) ProtoReflect() protoreflect.Message {
	mi := &file_discovery_v1_discovery_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DiscoveredURL.ProtoReflect.Descriptor instead.
func (*DiscoveredURL) Descriptor() ([]byte, []int) {
	return file_discovery_v1_discovery_proto_rawDescGZIP(), []int{14}
}

func (x *DiscoveredURL) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *DiscoveredURL) GetManufacturerId() string {
	if x != nil {
		return x.ManufacturerId
	}
	return ""
}

func (x *DiscoveredURL) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *DiscoveredURL) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *DiscoveredURL) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *DiscoveredURL) GetDiscoveredAt() string {
	if x != nil {
		return x.DiscoveredAt
	}
	return ""
}

func (x *DiscoveredURL) GetScrapedAt() string {
	if x != nil {
		return x.ScrapedAt
	}
	return ""
}

func (x *DiscoveredURL) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *DiscoveredURL) GetDuplicateStatus() string {
	if x != nil {
		return x.DuplicateStatus
	}
	return ""
}

func (x *DiscoveredURL) GetExistingMachineId() string {
	if x != nil {
		return x.ExistingMachineId
	}
	return ""
}

func (x *DiscoveredURL) GetSimilarityScore() float64 {
	if x != nil {
		return x.SimilarityScore
	}
	return 0
}

func (x *DiscoveredURL) GetHasSimilarityScore() bool {
	if x != nil {
		return x.HasSimilarityScore
	}
	return false
}

func (x *DiscoveredURL) GetDuplicateReason() string {
	if x != nil {
		return x.DuplicateReason
	}
	return ""
}

func (x *DiscoveredURL) GetCheckedAt() string {
	if x != nil {
		return x.CheckedAt
	}
	return ""
}

func (x *DiscoveredURL) GetMlClassification() string {
	if x != nil {
		return x.MlClassification
	}
	return ""
}

func (x *DiscoveredURL) GetMlConfidence() float64 {
	if x != nil {
		return x.MlConfidence
	}
	return 0
}

func (x *DiscoveredURL) GetHasMlConfidence() bool {
	if x != nil {
		return x.HasMlConfidence
	}
	return false
}

func (x *DiscoveredURL) GetMlReason() string {
	if x != nil {
		return x.MlReason
	}
	return ""
}

func (x *DiscoveredURL) GetMachineType() string {
	if x != nil {
		return x.MachineType
	}
	return ""
}

func (x *DiscoveredURL) GetShouldAutoSkip() bool {
	if x != nil {
		return x.ShouldAutoSkip
	}
	return false
}

var File_discovery_v1_discovery_proto protoreflect.FileDescriptor

const file_discovery_v1_discovery_proto_rawDesc = "" +
	"\n" +
	"\x1cdiscovery/v1/discovery.proto\x12\fdiscovery.v1\"\x80\x01\n" +
	"\x1bScrapeDiscoveredURLsRequest\x12\x17\n" +
	"\aurl_ids\x18\x01 \x03(\tR\x06urlIds\x12'\n" +
	"\x0fmanufacturer_id\x18\x02 \x01(\tR\x0emanufacturerId\x12\x1f\n" +
	"\vmax_workers\x18\x03 \x01(\x05R\n" +
	"maxWorkers\"q\n" +
	"\x1cScrapeDiscoveredURLsResponse\x12\x19\n" +
	"\bbatch_id\x18\x01 \x01(\tR\abatchId\x12\x1a\n" +
	"\baccepted\x18\x02 \x01(\x05R\baccepted\x12\x1a\n" +
	"\brejected\x18\x03 \x01(\x05R\brejected\"G\n" +
	"\x1cRunDuplicateDetectionRequest\x12'\n" +
	"\x0fmanufacturer_id\x18\x01 \x01(\tR\x0emanufacturerId\"d\n" +
	"\x1dRunDuplicateDetectionResponse\x12\x18\n" +
	"\achecked\x18\x01 \x01(\x05R\achecked\x12)\n" +
	"\x10duplicates_found\x18\x02 \x01(\x05R\x0fduplicatesFound\"\\\n" +
	"\x1fUpdateURLDuplicateStatusRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12)\n" +
	"\x10duplicate_status\x18\x02 \x01(\tR\x0fduplicateStatus\"O\n" +
	"\x17LinkURLToMachineRequest\x12\x15\n" +
	"\x06url_id\x18\x01 \x01(\tR\x05urlId\x12\x1d\n" +
	"\n" +
	"machine_id\x18\x02 \x01(\tR\tmachineId\"\xb3\x01\n" +
	"\x19ListDiscoveredURLsRequest\x12'\n" +
	"\x0fmanufacturer_id\x18\x01 \x01(\tR\x0emanufacturerId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12)\n" +
	"\x10duplicate_status\x18\x03 \x01(\tR\x0fduplicateStatus\x12*\n" +
	"\x11exclude_auto_skip\x18\x04 \x01(\bR\x0fexcludeAutoSkip\"M\n" +
	"\x1aListDiscoveredURLsResponse\x12/\n" +
	"\x04urls\x18\x01 \x03(\v2\x1b.discovery.v1.DiscoveredURLR\x04urls\"E\n" +
	"\x1aClassifyPendingURLsRequest\x12'\n" +
	"\x0fmanufacturer_id\x18\x01 \x01(\tR\x0emanufacturerId\"x\n" +
	"\x1bClassifyPendingURLsResponse\x12\x1e\n" +
	"\n" +
	"classified\x18\x01 \x01(\x05R\n" +
	"classified\x12!\n" +
	"\fauto_skipped\x18\x02 \x01(\x05R\vautoSkipped\x12\x16\n" +
	"\x06failed\x18\x03 \x01(\x05R\x06failed\"\x1c\n" +
	"\n" +
	"URLRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"F\n" +
	"\x15DiscoveredURLResponse\x12-\n" +
	"\x03url\x18\x01 \x01(\v2\x1b.discovery.v1.DiscoveredURLR\x03url\"i\n" +
	"\x13ExportReviewRequest\x12'\n" +
	"\x0fmanufacturer_id\x18\x01 \x01(\tR\x0emanufacturerId\x12)\n" +
	"\x10duplicate_status\x18\x02 \x01(\tR\x0fduplicateStatus\"*\n" +
	"\x14ExportReviewResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"\xe1\x05\n" +
	"\rDiscoveredURL\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12'\n" +
	"\x0fmanufacturer_id\x18\x02 \x01(\tR\x0emanufacturerId\x12\x10\n" +
	"\x03url\x18\x03 \x01(\tR\x03url\x12\x1a\n" +
	"\bcategory\x18\x04 \x01(\tR\bcategory\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12#\n" +
	"\rdiscovered_at\x18\x06 \x01(\tR\fdiscoveredAt\x12\x1d\n" +
	"\n" +
	"scraped_at\x18\a \x01(\tR\tscrapedAt\x12#\n" +
	"\rerror_message\x18\b \x01(\tR\ferrorMessage\x12)\n" +
	"\x10duplicate_status\x18\t \x01(\tR\x0fduplicateStatus\x12.\n" +
	"\x13existing_machine_id\x18\n" +
	" \x01(\tR\x11existingMachineId\x12)\n" +
	"\x10similarity_score\x18\v \x01(\x01R\x0fsimilarityScore\x120\n" +
	"\x14has_similarity_score\x18\f \x01(\bR\x12hasSimilarityScore\x12)\n" +
	"\x10duplicate_reason\x18\r \x01(\tR\x0fduplicateReason\x12\x1d\n" +
	"\n" +
	"checked_at\x18\x0e \x01(\tR\tcheckedAt\x12+\n" +
	"\x11ml_classification\x18\x0f \x01(\tR\x10mlClassification\x12#\n" +
	"\rml_confidence\x18\x10 \x01(\x01R\fmlConfidence\x12*\n" +
	"\x11has_ml_confidence\x18\x11 \x01(\bR\x0fhasMlConfidence\x12\x1b\n" +
	"\tml_reason\x18\x12 \x01(\tR\bmlReason\x12!\n" +
	"\fmachine_type\x18\x13 \x01(\tR\vmachineType\x12(\n" +
	"\x10should_auto_skip\x18\x14 \x01(\bR\x0eshouldAutoSkip2\xd3\a\n" +
	"\x10DiscoveryService\x12m\n" +
	"\x14ScrapeDiscoveredURLs\x12).discovery.v1.ScrapeDiscoveredURLsRequest\x1a*.discovery.v1.ScrapeDiscoveredURLsResponse\x12p\n" +
	"\x15RunDuplicateDetection\x12*.discovery.v1.RunDuplicateDetectionRequest\x1a+.discovery.v1.RunDuplicateDetectionResponse\x12n\n" +
	"\x18UpdateURLDuplicateStatus\x12-.discovery.v1.UpdateURLDuplicateStatusRequest\x1a#.discovery.v1.DiscoveredURLResponse\x12^\n" +
	"\x10LinkURLToMachine\x12%.discovery.v1.LinkURLToMachineRequest\x1a#.discovery.v1.DiscoveredURLResponse\x12g\n" +
	"\x12ListDiscoveredURLs\x12'.discovery.v1.ListDiscoveredURLsRequest\x1a(.discovery.v1.ListDiscoveredURLsResponse\x12j\n" +
	"\x13ClassifyPendingURLs\x12(.discovery.v1.ClassifyPendingURLsRequest\x1a).discovery.v1.ClassifyPendingURLsResponse\x12K\n" +
	"\n" +
	"RequeueURL\x12\x18.discovery.v1.URLRequest\x1a#.discovery.v1.DiscoveredURLResponse\x12H\n" +
	"\aSkipURL\x12\x18.discovery.v1.URLRequest\x1a#.discovery.v1.DiscoveredURLResponse\x12K\n" +
	"\n" +
	"RecheckURL\x12\x18.discovery.v1.URLRequest\x1a#.discovery.v1.DiscoveredURLResponse\x12U\n" +
	"\fExportReview\x12!.discovery.v1.ExportReviewRequest\x1a\".discovery.v1.ExportReviewResponseBMZKgithub.com/machinehub/discovery-pipeline/gen/proto/discovery/v1;discoveryv1b\x06proto3"

var (
	file_discovery_v1_discovery_proto_rawDescOnce sync.Once
	file_discovery_v1_discovery_proto_rawDescData []byte
)

func file_discovery_v1_discovery_proto_rawDescGZIP() []byte {
	file_discovery_v1_discovery_proto_rawDescOnce.Do(func() {
		file_discovery_v1_discovery_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_discovery_v1_discovery_proto_rawDesc), len(file_discovery_v1_discovery_proto_rawDesc)))
	})
	return file_discovery_v1_discovery_proto_rawDescData
}

var file_discovery_v1_discovery_proto_msgTypes = make([]protoimpl.MessageInfo, 15)
var file_discovery_v1_discovery_proto_goTypes = []any{
	(*ScrapeDiscoveredURLsRequest)(nil),     // 0: discovery.v1.ScrapeDiscoveredURLsRequest
	(*ScrapeDiscoveredURLsResponse)(nil),    // 1: discovery.v1.ScrapeDiscoveredURLsResponse
	(*RunDuplicateDetectionRequest)(nil),    // 2: discovery.v1.RunDuplicateDetectionRequest
	(*RunDuplicateDetectionResponse)(nil),   // 3: discovery.v1.RunDuplicateDetectionResponse
	(*UpdateURLDuplicateStatusRequest)(nil), // 4: discovery.v1.UpdateURLDuplicateStatusRequest
	(*LinkURLToMachineRequest)(nil),         // 5: discovery.v1.LinkURLToMachineRequest
	(*ListDiscoveredURLsRequest)(nil),       // 6: discovery.v1.ListDiscoveredURLsRequest
	(*ListDiscoveredURLsResponse)(nil),      // 7: discovery.v1.ListDiscoveredURLsResponse
	(*ClassifyPendingURLsRequest)(nil),      // 8: discovery.v1.ClassifyPendingURLsRequest
	(*ClassifyPendingURLsResponse)(nil),     // 9: discovery.v1.ClassifyPendingURLsResponse
	(*URLRequest)(nil),                      // 10: discovery.v1.URLRequest
	(*DiscoveredURLResponse)(nil),           // 11: discovery.v1.DiscoveredURLResponse
	(*ExportReviewRequest)(nil),             // 12: discovery.v1.ExportReviewRequest
	(*ExportReviewResponse)(nil),            // 13: discovery.v1.ExportReviewResponse
	(*DiscoveredURL)(nil),                   // 14: discovery.v1.DiscoveredURL
}
var file_discovery_v1_discovery_proto_depIdxs = []int32{
	14, // 0: discovery.v1.ListDiscoveredURLsResponse.urls:type_name -> discovery.v1.DiscoveredURL
	14, // 1: discovery.v1.DiscoveredURLResponse.url:type_name -> discovery.v1.DiscoveredURL
	0,  // 2: discovery.v1.DiscoveryService.ScrapeDiscoveredURLs:input_type -> discovery.v1.ScrapeDiscoveredURLsRequest
	2,  // 3: discovery.v1.DiscoveryService.RunDuplicateDetection:input_type -> discovery.v1.RunDuplicateDetectionRequest
	4,  // 4: discovery.v1.DiscoveryService.UpdateURLDuplicateStatus:input_type -> discovery.v1.UpdateURLDuplicateStatusRequest
	5,  // 5: discovery.v1.DiscoveryService.LinkURLToMachine:input_type -> discovery.v1.LinkURLToMachineRequest
	6,  // 6: discovery.v1.DiscoveryService.ListDiscoveredURLs:input_type -> discovery.v1.ListDiscoveredURLsRequest
	8,  // 7: discovery.v1.DiscoveryService.ClassifyPendingURLs:input_type -> discovery.v1.ClassifyPendingURLsRequest
	10, // 8: discovery.v1.DiscoveryService.RequeueURL:input_type -> discovery.v1.URLRequest
	10, // 9: discovery.v1.DiscoveryService.SkipURL:input_type -> discovery.v1.URLRequest
	10, // 10: discovery.v1.DiscoveryService.RecheckURL:input_type -> discovery.v1.URLRequest
	12, // 11: discovery.v1.DiscoveryService.ExportReview:input_type -> discovery.v1.ExportReviewRequest
	1,  // 12: discovery.v1.DiscoveryService.ScrapeDiscoveredURLs:output_type -> discovery.v1.ScrapeDiscoveredURLsResponse
	3,  // 13: discovery.v1.DiscoveryService.RunDuplicateDetection:output_type -> discovery.v1.RunDuplicateDetectionResponse
	11, // 14: discovery.v1.DiscoveryService.UpdateURLDuplicateStatus:output_type -> discovery.v1.DiscoveredURLResponse
	11, // 15: discovery.v1.DiscoveryService.LinkURLToMachine:output_type -> discovery.v1.DiscoveredURLResponse
	7,  // 16: discovery.v1.DiscoveryService.ListDiscoveredURLs:output_type -> discovery.v1.ListDiscoveredURLsResponse
	9,  // 17: discovery.v1.DiscoveryService.ClassifyPendingURLs:output_type -> discovery.v1.ClassifyPendingURLsResponse
	11, // 18: discovery.v1.DiscoveryService.RequeueURL:output_type -> discovery.v1.DiscoveredURLResponse
	11, // 19: discovery.v1.DiscoveryService.SkipURL:output_type -> discovery.v1.DiscoveredURLResponse
	11, // 20: discovery.v1.DiscoveryService.RecheckURL:output_type -> discovery.v1.DiscoveredURLResponse
	13, // 21: discovery.v1.DiscoveryService.ExportReview:output_type -> discovery.v1.ExportReviewResponse
	12, // [12:22] is the sub-list for method output_type
	2,  // [2:12] is the sub-list for method input_type
	2,  // [2:2] is the sub-list for extension type_name
	2,  // [2:2] is the sub-list for extension extendee
	0,  // [0:2] is the sub-list for field type_name
}

func init() { file_discovery_v1_discovery_proto_init() }
func file_discovery_v1_discovery_proto_init() {
	if File_discovery_v1_discovery_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_discovery_v1_discovery_proto_rawDesc), len(file_discovery_v1_discovery_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   15,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_discovery_v1_discovery_proto_goTypes,
		DependencyIndexes: file_discovery_v1_discovery_proto_depIdxs,
		MessageInfos:      file_discovery_v1_discovery_proto_msgTypes,
	}.Build()
	File_discovery_v1_discovery_proto = out.File
	file_discovery_v1_discovery_proto_goTypes = nil
	file_discovery_v1_discovery_proto_depIdxs = nil
}
