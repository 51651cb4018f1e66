// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: sds/v1/sds.proto

package sdsv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	SDSService_CreateFacility_FullMethodName    = "/sds.v1.SDSService/CreateFacility"
	SDSService_ListFacilities_FullMethodName    = "/sds.v1.SDSService/ListFacilities"
	SDSService_TriggerExtraction_FullMethodName = "/sds.v1.SDSService/TriggerExtraction"
	SDSService_ValidateDocument_FullMethodName  = "/sds.v1.SDSService/ValidateDocument"
	SDSService_ProcessBatch_FullMethodName      = "/sds.v1.SDSService/ProcessBatch"
	SDSService_GetDocument_FullMethodName       = "/sds.v1.SDSService/GetDocument"
	SDSService_ListDocuments_FullMethodName     = "/sds.v1.SDSService/ListDocuments"
	SDSService_ExportDocuments_FullMethodName   = "/sds.v1.SDSService/ExportDocuments"
)

// SDSServiceClient is the client API for SDSService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// SDSService drives safety data sheet extraction, classification and export.
type SDSServiceClient interface {
	CreateFacility(ctx context.Context, in *CreateFacilityRequest, opts ...grpc.CallOption) (*CreateFacilityResponse, error)
	ListFacilities(ctx context.Context, in *ListFacilitiesRequest, opts ...grpc.CallOption) (*ListFacilitiesResponse, error)
	TriggerExtraction(ctx context.Context, in *TriggerExtractionRequest, opts ...grpc.CallOption) (*TriggerExtractionResponse, error)
	ValidateDocument(ctx context.Context, in *ValidateDocumentRequest, opts ...grpc.CallOption) (*ValidateDocumentResponse, error)
	ProcessBatch(ctx context.Context, in *ProcessBatchRequest, opts ...grpc.CallOption) (*ProcessBatchResponse, error)
	GetDocument(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error)
	ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error)
	ExportDocuments(ctx context.Context, in *ExportDocumentsRequest, opts ...grpc.CallOption) (*ExportDocumentsResponse, error)
}

type sDSServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSDSServiceClient(cc grpc.ClientConnInterface) SDSServiceClient {
	return &sDSServiceClient{cc}
}

func (c *sDSServiceClient) CreateFacility(ctx context.Context, in *CreateFacilityRequest, opts ...grpc.CallOption) (*CreateFacilityResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateFacilityResponse)
	err := c.cc.Invoke(ctx, SDSService_CreateFacility_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sDSServiceClient) ListFacilities(ctx context.Context, in *ListFacilitiesRequest, opts ...grpc.CallOption) (*ListFacilitiesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListFacilitiesResponse)
	err := c.cc.Invoke(ctx, SDSService_ListFacilities_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sDSServiceClient) TriggerExtraction(ctx context.Context, in *TriggerExtractionRequest, opts ...grpc.CallOption) (*TriggerExtractionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TriggerExtractionResponse)
	err := c.cc.Invoke(ctx, SDSService_TriggerExtraction_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sDSServiceClient) ValidateDocument(ctx context.Context, in *ValidateDocumentRequest, opts ...grpc.CallOption) (*ValidateDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ValidateDocumentResponse)
	err := c.cc.Invoke(ctx, SDSService_ValidateDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sDSServiceClient) ProcessBatch(ctx context.Context, in *ProcessBatchRequest, opts ...grpc.CallOption) (*ProcessBatchResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessBatchResponse)
	err := c.cc.Invoke(ctx, SDSService_ProcessBatch_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sDSServiceClient) GetDocument(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDocumentResponse)
	err := c.cc.Invoke(ctx, SDSService_GetDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sDSServiceClient) ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListDocumentsResponse)
	err := c.cc.Invoke(ctx, SDSService_ListDocuments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sDSServiceClient) ExportDocuments(ctx context.Context, in *ExportDocumentsRequest, opts ...grpc.CallOption) (*ExportDocumentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportDocumentsResponse)
	err := c.cc.Invoke(ctx, SDSService_ExportDocuments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SDSServiceServer is the server API for SDSService service.
// All implementations must embed UnimplementedSDSServiceServer
// for forward compatibility.
//
// SDSService drives safety data sheet extraction, classification and export.
type SDSServiceServer interface {
	CreateFacility(context.Context, *CreateFacilityRequest) (*CreateFacilityResponse, error)
	ListFacilities(context.Context, *ListFacilitiesRequest) (*ListFacilitiesResponse, error)
	TriggerExtraction(context.Context, *TriggerExtractionRequest) (*TriggerExtractionResponse, error)
	ValidateDocument(context.Context, *ValidateDocumentRequest) (*ValidateDocumentResponse, error)
	ProcessBatch(context.Context, *ProcessBatchRequest) (*ProcessBatchResponse, error)
	GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error)
	ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error)
	ExportDocuments(context.Context, *ExportDocumentsRequest) (*ExportDocumentsResponse, error)
	mustEmbedUnimplementedSDSServiceServer()
}

// UnimplementedSDSServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedSDSServiceServer struct{}

func (UnimplementedSDSServiceServer) CreateFacility(context.Context, *CreateFacilityRequest) (*CreateFacilityResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateFacility not implemented")
}
func (UnimplementedSDSServiceServer) ListFacilities(context.Context, *ListFacilitiesRequest) (*ListFacilitiesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListFacilities not implemented")
}
func (UnimplementedSDSServiceServer) TriggerExtraction(context.Context, *TriggerExtractionRequest) (*TriggerExtractionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method TriggerExtraction not implemented")
}
func (UnimplementedSDSServiceServer) ValidateDocument(context.Context, *ValidateDocumentRequest) (*ValidateDocumentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ValidateDocument not implemented")
}
func (UnimplementedSDSServiceServer) ProcessBatch(context.Context, *ProcessBatchRequest) (*ProcessBatchResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ProcessBatch not implemented")
}
func (UnimplementedSDSServiceServer) GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDocument not implemented")
}
func (UnimplementedSDSServiceServer) ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListDocuments not implemented")
}
func (UnimplementedSDSServiceServer) ExportDocuments(context.Context, *ExportDocumentsRequest) (*ExportDocumentsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportDocuments not implemented")
}
func (UnimplementedSDSServiceServer) mustEmbedUnimplementedSDSServiceServer() {}
func (UnimplementedSDSServiceServer) testEmbeddedByValue()                    {}

// UnsafeSDSServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to SDSServiceServer will
// result in compilation errors.
type UnsafeSDSServiceServer interface {
	mustEmbedUnimplementedSDSServiceServer()
}

func RegisterSDSServiceServer(s grpc.ServiceRegistrar, srv SDSServiceServer) {
	// If the following call panics, it indicates UnimplementedSDSServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&SDSService_ServiceDesc, srv)
}

func _SDSService_CreateFacility_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateFacilityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SDSServiceServer).CreateFacility(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SDSService_CreateFacility_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SDSServiceServer).CreateFacility(ctx, req.(*CreateFacilityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SDSService_ListFacilities_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListFacilitiesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SDSServiceServer).ListFacilities(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SDSService_ListFacilities_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SDSServiceServer).ListFacilities(ctx, req.(*ListFacilitiesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SDSService_TriggerExtraction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TriggerExtractionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SDSServiceServer).TriggerExtraction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SDSService_TriggerExtraction_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SDSServiceServer).TriggerExtraction(ctx, req.(*TriggerExtractionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SDSService_ValidateDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ValidateDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SDSServiceServer).ValidateDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SDSService_ValidateDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SDSServiceServer).ValidateDocument(ctx, req.(*ValidateDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SDSService_ProcessBatch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessBatchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SDSServiceServer).ProcessBatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SDSService_ProcessBatch_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SDSServiceServer).ProcessBatch(ctx, req.(*ProcessBatchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SDSService_GetDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SDSServiceServer).GetDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SDSService_GetDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SDSServiceServer).GetDocument(ctx, req.(*GetDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SDSService_ListDocuments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDocumentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SDSServiceServer).ListDocuments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SDSService_ListDocuments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SDSServiceServer).ListDocuments(ctx, req.(*ListDocumentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SDSService_ExportDocuments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportDocumentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SDSServiceServer).ExportDocuments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SDSService_ExportDocuments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SDSServiceServer).ExportDocuments(ctx, req.(*ExportDocumentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SDSService_ServiceDesc is the grpc.ServiceDesc for SDSService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var SDSService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "sds.v1.SDSService",
	HandlerType: (*SDSServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateFacility",
			Handler:    _SDSService_CreateFacility_Handler,
		},
		{
			MethodName: "ListFacilities",
			Handler:    _SDSService_ListFacilities_Handler,
		},
		{
			MethodName: "TriggerExtraction",
			Handler:    _SDSService_TriggerExtraction_Handler,
		},
		{
			MethodName: "ValidateDocument",
			Handler:    _SDSService_ValidateDocument_Handler,
		},
		{
			MethodName: "ProcessBatch",
			Handler:    _SDSService_ProcessBatch_Handler,
		},
		{
			MethodName: "GetDocument",
			Handler:    _SDSService_GetDocument_Handler,
		},
		{
			MethodName: "ListDocuments",
			Handler:    _SDSService_ListDocuments_Handler,
		},
		{
			MethodName: "ExportDocuments",
			Handler:    _SDSService_ExportDocuments_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "sds/v1/sds.proto",
}
