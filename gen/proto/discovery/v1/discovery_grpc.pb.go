// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: discovery/v1/discovery.proto

package discoveryv1

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
	DiscoveryService_ScrapeDiscoveredURLs_FullMethodName     = "/discovery.v1.DiscoveryService/ScrapeDiscoveredURLs"
	DiscoveryService_RunDuplicateDetection_FullMethodName    = "/discovery.v1.DiscoveryService/RunDuplicateDetection"
	DiscoveryService_UpdateURLDuplicateStatus_FullMethodName = "/discovery.v1.DiscoveryService/UpdateURLDuplicateStatus"
	DiscoveryService_LinkURLToMachine_FullMethodName         = "/discovery.v1.DiscoveryService/LinkURLToMachine"
	DiscoveryService_ListDiscoveredURLs_FullMethodName       = "/discovery.v1.DiscoveryService/ListDiscoveredURLs"
	DiscoveryService_ClassifyPendingURLs_FullMethodName      = "/discovery.v1.DiscoveryService/ClassifyPendingURLs"
	DiscoveryService_RequeueURL_FullMethodName               = "/discovery.v1.DiscoveryService/RequeueURL"
	DiscoveryService_SkipURL_FullMethodName                  = "/discovery.v1.DiscoveryService/SkipURL"
	DiscoveryService_RecheckURL_FullMethodName               = "/discovery.v1.DiscoveryService/RecheckURL"
	DiscoveryService_ExportReview_FullMethodName             = "/discovery.v1.DiscoveryService/ExportReview"
)

// DiscoveryServiceClient is the client API for DiscoveryService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type DiscoveryServiceClient interface {
	// Dispatches a scrape batch; asynchronous, poll ListDiscoveredURLs afterward.
	ScrapeDiscoveredURLs(ctx context.Context, in *ScrapeDiscoveredURLsRequest, opts ...grpc.CallOption) (*ScrapeDiscoveredURLsResponse, error)
	// Runs one duplicate-detection pass over scraped-but-unchecked URLs.
	RunDuplicateDetection(ctx context.Context, in *RunDuplicateDetectionRequest, opts ...grpc.CallOption) (*RunDuplicateDetectionResponse, error)
	// Human override of a URL's duplicate status.
	UpdateURLDuplicateStatus(ctx context.Context, in *UpdateURLDuplicateStatusRequest, opts ...grpc.CallOption) (*DiscoveredURLResponse, error)
	// Human override: manually link a URL to an existing catalog machine.
	LinkURLToMachine(ctx context.Context, in *LinkURLToMachineRequest, opts ...grpc.CallOption) (*DiscoveredURLResponse, error)
	// Read path for the operator review UI.
	ListDiscoveredURLs(ctx context.Context, in *ListDiscoveredURLsRequest, opts ...grpc.CallOption) (*ListDiscoveredURLsResponse, error)
	// Runs the external classifier over unlabeled pending URLs.
	ClassifyPendingURLs(ctx context.Context, in *ClassifyPendingURLsRequest, opts ...grpc.CallOption) (*ClassifyPendingURLsResponse, error)
	// Returns a terminal URL to the scrape queue.
	RequeueURL(ctx context.Context, in *URLRequest, opts ...grpc.CallOption) (*DiscoveredURLResponse, error)
	// Explicit human skip of a pending URL.
	SkipURL(ctx context.Context, in *URLRequest, opts ...grpc.CallOption) (*DiscoveredURLResponse, error)
	// Explicit per-URL re-run of duplicate detection; replaces prior decisions.
	RecheckURL(ctx context.Context, in *URLRequest, opts ...grpc.CallOption) (*DiscoveredURLResponse, error)
	// XLSX review workbook for offline adjudication.
	ExportReview(ctx context.Context, in *ExportReviewRequest, opts ...grpc.CallOption) (*ExportReviewResponse, error)
}

type discoveryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDiscoveryServiceClient(cc grpc.ClientConnInterface) DiscoveryServiceClient {
	return &discoveryServiceClient{cc}
}

func (c *discoveryServiceClient) ScrapeDiscoveredURLs(ctx context.Context, in *ScrapeDiscoveredURLsRequest, opts ...grpc.CallOption) (*ScrapeDiscoveredURLsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ScrapeDiscoveredURLsResponse)
	err := c.cc.Invoke(ctx, DiscoveryService_ScrapeDiscoveredURLs_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *discoveryServiceClient) RunDuplicateDetection(ctx context.Context, in *RunDuplicateDetectionRequest, opts ...grpc.CallOption) (*RunDuplicateDetectionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RunDuplicateDetectionResponse)
	err := c.cc.Invoke(ctx, DiscoveryService_RunDuplicateDetection_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *discoveryServiceClient) UpdateURLDuplicateStatus(ctx context.Context, in *UpdateURLDuplicateStatusRequest, opts ...grpc.CallOption) (*DiscoveredURLResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DiscoveredURLResponse)
	err := c.cc.Invoke(ctx, DiscoveryService_UpdateURLDuplicateStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *discoveryServiceClient) LinkURLToMachine(ctx context.Context, in *LinkURLToMachineRequest, opts ...grpc.CallOption) (*DiscoveredURLResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DiscoveredURLResponse)
	err := c.cc.Invoke(ctx, DiscoveryService_LinkURLToMachine_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *discoveryServiceClient) ListDiscoveredURLs(ctx context.Context, in *ListDiscoveredURLsRequest, opts ...grpc.CallOption) (*ListDiscoveredURLsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListDiscoveredURLsResponse)
	err := c.cc.Invoke(ctx, DiscoveryService_ListDiscoveredURLs_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *discoveryServiceClient) ClassifyPendingURLs(ctx context.Context, in *ClassifyPendingURLsRequest, opts ...grpc.CallOption) (*ClassifyPendingURLsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ClassifyPendingURLsResponse)
	err := c.cc.Invoke(ctx, DiscoveryService_ClassifyPendingURLs_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *discoveryServiceClient) RequeueURL(ctx context.Context, in *URLRequest, opts ...grpc.CallOption) (*DiscoveredURLResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DiscoveredURLResponse)
	err := c.cc.Invoke(ctx, DiscoveryService_RequeueURL_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *discoveryServiceClient) SkipURL(ctx context.Context, in *URLRequest, opts ...grpc.CallOption) (*DiscoveredURLResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DiscoveredURLResponse)
	err := c.cc.Invoke(ctx, DiscoveryService_SkipURL_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *discoveryServiceClient) RecheckURL(ctx context.Context, in *URLRequest, opts ...grpc.CallOption) (*DiscoveredURLResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DiscoveredURLResponse)
	err := c.cc.Invoke(ctx, DiscoveryService_RecheckURL_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *discoveryServiceClient) ExportReview(ctx context.Context, in *ExportReviewRequest, opts ...grpc.CallOption) (*ExportReviewResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportReviewResponse)
	err := c.cc.Invoke(ctx, DiscoveryService_ExportReview_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DiscoveryServiceServer is the server API for DiscoveryService service.
// All implementations must embed UnimplementedDiscoveryServiceServer
// for forward compatibility.
type DiscoveryServiceServer interface {
	// Dispatches a scrape batch; asynchronous, poll ListDiscoveredURLs afterward.
	ScrapeDiscoveredURLs(context.Context, *ScrapeDiscoveredURLsRequest) (*ScrapeDiscoveredURLsResponse, error)
	// Runs one duplicate-detection pass over scraped-but-unchecked URLs.
	RunDuplicateDetection(context.Context, *RunDuplicateDetectionRequest) (*RunDuplicateDetectionResponse, error)
	// Human override of a URL's duplicate status.
	UpdateURLDuplicateStatus(context.Context, *UpdateURLDuplicateStatusRequest) (*DiscoveredURLResponse, error)
	// Human override: manually link a URL to an existing catalog machine.
	LinkURLToMachine(context.Context, *LinkURLToMachineRequest) (*DiscoveredURLResponse, error)
	// Read path for the operator review UI.
	ListDiscoveredURLs(context.Context, *ListDiscoveredURLsRequest) (*ListDiscoveredURLsResponse, error)
	// Runs the external classifier over unlabeled pending URLs.
	ClassifyPendingURLs(context.Context, *ClassifyPendingURLsRequest) (*ClassifyPendingURLsResponse, error)
	// Returns a terminal URL to the scrape queue.
	RequeueURL(context.Context, *URLRequest) (*DiscoveredURLResponse, error)
	// Explicit human skip of a pending URL.
	SkipURL(context.Context, *URLRequest) (*DiscoveredURLResponse, error)
	// Explicit per-URL re-run of duplicate detection; replaces prior decisions.
	RecheckURL(context.Context, *URLRequest) (*DiscoveredURLResponse, error)
	// XLSX review workbook for offline adjudication.
	ExportReview(context.Context, *ExportReviewRequest) (*ExportReviewResponse, error)
	mustEmbedUnimplementedDiscoveryServiceServer()
}

// UnimplementedDiscoveryServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedDiscoveryServiceServer struct{}

func (UnimplementedDiscoveryServiceServer) ScrapeDiscoveredURLs(context.Context, *ScrapeDiscoveredURLsRequest) (*ScrapeDiscoveredURLsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScrapeDiscoveredURLs not implemented")
}
func (UnimplementedDiscoveryServiceServer) RunDuplicateDetection(context.Context, *RunDuplicateDetectionRequest) (*RunDuplicateDetectionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RunDuplicateDetection not implemented")
}
func (UnimplementedDiscoveryServiceServer) UpdateURLDuplicateStatus(context.Context, *UpdateURLDuplicateStatusRequest) (*DiscoveredURLResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateURLDuplicateStatus not implemented")
}
func (UnimplementedDiscoveryServiceServer) LinkURLToMachine(context.Context, *LinkURLToMachineRequest) (*DiscoveredURLResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method LinkURLToMachine not implemented")
}
func (UnimplementedDiscoveryServiceServer) ListDiscoveredURLs(context.Context, *ListDiscoveredURLsRequest) (*ListDiscoveredURLsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListDiscoveredURLs not implemented")
}
func (UnimplementedDiscoveryServiceServer) ClassifyPendingURLs(context.Context, *ClassifyPendingURLsRequest) (*ClassifyPendingURLsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClassifyPendingURLs not implemented")
}
func (UnimplementedDiscoveryServiceServer) RequeueURL(context.Context, *URLRequest) (*DiscoveredURLResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RequeueURL not implemented")
}
func (UnimplementedDiscoveryServiceServer) SkipURL(context.Context, *URLRequest) (*DiscoveredURLResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SkipURL not implemented")
}
func (UnimplementedDiscoveryServiceServer) RecheckURL(context.Context, *URLRequest) (*DiscoveredURLResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecheckURL not implemented")
}
func (UnimplementedDiscoveryServiceServer) ExportReview(context.Context, *ExportReviewRequest) (*ExportReviewResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportReview not implemented")
}
func (UnimplementedDiscoveryServiceServer) mustEmbedUnimplementedDiscoveryServiceServer() {}
func (UnimplementedDiscoveryServiceServer) testEmbeddedByValue()                          {}

// UnsafeDiscoveryServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to DiscoveryServiceServer will
// result in compilation errors.
type UnsafeDiscoveryServiceServer interface {
	mustEmbedUnimplementedDiscoveryServiceServer()
}

func RegisterDiscoveryServiceServer(s grpc.ServiceRegistrar, srv DiscoveryServiceServer) {
	// If the following call pancis, it indicates UnimplementedDiscoveryServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&DiscoveryService_ServiceDesc, srv)
}

func _DiscoveryService_ScrapeDiscoveredURLs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScrapeDiscoveredURLsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DiscoveryServiceServer).ScrapeDiscoveredURLs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DiscoveryService_ScrapeDiscoveredURLs_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DiscoveryServiceServer).ScrapeDiscoveredURLs(ctx, req.(*ScrapeDiscoveredURLsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DiscoveryService_RunDuplicateDetection_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RunDuplicateDetectionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DiscoveryServiceServer).RunDuplicateDetection(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DiscoveryService_RunDuplicateDetection_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DiscoveryServiceServer).RunDuplicateDetection(ctx, req.(*RunDuplicateDetectionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DiscoveryService_UpdateURLDuplicateStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateURLDuplicateStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DiscoveryServiceServer).UpdateURLDuplicateStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DiscoveryService_UpdateURLDuplicateStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DiscoveryServiceServer).UpdateURLDuplicateStatus(ctx, req.(*UpdateURLDuplicateStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DiscoveryService_LinkURLToMachine_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LinkURLToMachineRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DiscoveryServiceServer).LinkURLToMachine(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DiscoveryService_LinkURLToMachine_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DiscoveryServiceServer).LinkURLToMachine(ctx, req.(*LinkURLToMachineRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DiscoveryService_ListDiscoveredURLs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDiscoveredURLsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DiscoveryServiceServer).ListDiscoveredURLs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DiscoveryService_ListDiscoveredURLs_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DiscoveryServiceServer).ListDiscoveredURLs(ctx, req.(*ListDiscoveredURLsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DiscoveryService_ClassifyPendingURLs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClassifyPendingURLsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DiscoveryServiceServer).ClassifyPendingURLs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DiscoveryService_ClassifyPendingURLs_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DiscoveryServiceServer).ClassifyPendingURLs(ctx, req.(*ClassifyPendingURLsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DiscoveryService_RequeueURL_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(URLRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DiscoveryServiceServer).RequeueURL(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DiscoveryService_RequeueURL_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DiscoveryServiceServer).RequeueURL(ctx, req.(*URLRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DiscoveryService_SkipURL_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(URLRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DiscoveryServiceServer).SkipURL(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DiscoveryService_SkipURL_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DiscoveryServiceServer).SkipURL(ctx, req.(*URLRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DiscoveryService_RecheckURL_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(URLRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DiscoveryServiceServer).RecheckURL(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DiscoveryService_RecheckURL_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DiscoveryServiceServer).RecheckURL(ctx, req.(*URLRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DiscoveryService_ExportReview_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportReviewRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DiscoveryServiceServer).ExportReview(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DiscoveryService_ExportReview_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DiscoveryServiceServer).ExportReview(ctx, req.(*ExportReviewRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DiscoveryService_ServiceDesc is the grpc.ServiceDesc for DiscoveryService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var DiscoveryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "discovery.v1.DiscoveryService",
	HandlerType: (*DiscoveryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ScrapeDiscoveredURLs",
			Handler:    _DiscoveryService_ScrapeDiscoveredURLs_Handler,
		},
		{
			MethodName: "RunDuplicateDetection",
			Handler:    _DiscoveryService_RunDuplicateDetection_Handler,
		},
		{
			MethodName: "UpdateURLDuplicateStatus",
			Handler:    _DiscoveryService_UpdateURLDuplicateStatus_Handler,
		},
		{
			MethodName: "LinkURLToMachine",
			Handler:    _DiscoveryService_LinkURLToMachine_Handler,
		},
		{
			MethodName: "ListDiscoveredURLs",
			Handler:    _DiscoveryService_ListDiscoveredURLs_Handler,
		},
		{
			MethodName: "ClassifyPendingURLs",
			Handler:    _DiscoveryService_ClassifyPendingURLs_Handler,
		},
		{
			MethodName: "RequeueURL",
			Handler:    _DiscoveryService_RequeueURL_Handler,
		},
		{
			MethodName: "SkipURL",
			Handler:    _DiscoveryService_SkipURL_Handler,
		},
		{
			MethodName: "RecheckURL",
			Handler:    _DiscoveryService_RecheckURL_Handler,
		},
		{
			MethodName: "ExportReview",
			Handler:    _DiscoveryService_ExportReview_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "discovery/v1/discovery.proto",
}
