package grpc

// proto.go defines the gRPC server interface derived from
// propstead/financing/v1/financing.proto. It is a stand-in for buf-generated
// code; once `buf generate` runs, replace this file with the generated
// package import.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/propstead/financing-service/internal/application/dto"
	"github.com/propstead/financing-service/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Wire types
// ---------------------------------------------------------------------------

// RefinancingSection requests a refinancing comparison.
type RefinancingSection struct {
	NewRatePct      float64 `json:"new_rate_pct"`
	NewTermYears    int     `json:"new_term_years"`
	RefinancingCost string  `json:"refinancing_cost"`
}

// ARMSection requests an adjustable-rate analysis.
type ARMSection struct {
	InitialTermYears int     `json:"initial_term_years"`
	PeriodicCapPct   float64 `json:"periodic_cap_pct"`
	LifetimeCapPct   float64 `json:"lifetime_cap_pct"`
	IndexRatePct     float64 `json:"index_rate_pct"`
	MarginPct        float64 `json:"margin_pct"`
}

// ComputeAmortizationRequest mirrors the proto request message. Monetary
// fields travel as strings to avoid float drift on the wire.
type ComputeAmortizationRequest struct {
	LoanAmount      string              `json:"loan_amount"`
	AnnualRatePct   float64             `json:"annual_rate_pct"`
	TermYears       int                 `json:"term_years"`
	StartDate       string              `json:"start_date,omitempty"`
	AnnualTax       string              `json:"annual_tax,omitempty"`
	AnnualInsurance string              `json:"annual_insurance,omitempty"`
	AnnualPMI       string              `json:"annual_pmi,omitempty"`
	AnnualHOA       string              `json:"annual_hoa,omitempty"`
	IncludeBiWeekly bool                `json:"include_bi_weekly,omitempty"`
	Refinancing     *RefinancingSection `json:"refinancing,omitempty"`
	ARM             *ARMSection         `json:"arm,omitempty"`
}

// ComputeAmortizationResponse mirrors the proto response message.
type ComputeAmortizationResponse struct {
	Result dto.AmortizationResponse `json:"result"`
}

// RankFinancingOptionsRequest mirrors the proto request message.
type RankFinancingOptionsRequest struct {
	LoanAmount    string `json:"loan_amount"`
	DownPayment   string `json:"down_payment,omitempty"`
	PropertyValue string `json:"property_value"`
	CreditScore   int    `json:"credit_score"`
}

// RankFinancingOptionsResponse mirrors the proto response message.
type RankFinancingOptionsResponse struct {
	Options []model.FinancingOption `json:"options"`
}

// EvaluatePreQualificationRequest mirrors the proto request message.
type EvaluatePreQualificationRequest struct {
	BorrowerID string `json:"borrower_id"`
}

// EvaluatePreQualificationResponse mirrors the proto response message.
type EvaluatePreQualificationResponse struct {
	Result dto.PreQualificationResponse `json:"result"`
}

// EvaluateCreditRiskRequest mirrors the proto request message.
type EvaluateCreditRiskRequest struct {
	BorrowerID string `json:"borrower_id"`
}

// EvaluateCreditRiskResponse mirrors the proto response message.
type EvaluateCreditRiskResponse struct {
	Result dto.CreditRiskResponse `json:"result"`
}

// ---------------------------------------------------------------------------
// Service interface and registration
// ---------------------------------------------------------------------------

// FinancingServiceServer is the server API for FinancingService. It mirrors
// the proto-generated interface from propstead.financing.v1.FinancingService.
type FinancingServiceServer interface {
	ComputeAmortization(context.Context, *ComputeAmortizationRequest) (*ComputeAmortizationResponse, error)
	RankFinancingOptions(context.Context, *RankFinancingOptionsRequest) (*RankFinancingOptionsResponse, error)
	EvaluatePreQualification(context.Context, *EvaluatePreQualificationRequest) (*EvaluatePreQualificationResponse, error)
	EvaluateCreditRisk(context.Context, *EvaluateCreditRiskRequest) (*EvaluateCreditRiskResponse, error)
	mustEmbedUnimplementedFinancingServiceServer()
}

// UnimplementedFinancingServiceServer provides forward-compatible default
// implementations.
type UnimplementedFinancingServiceServer struct{}

func (UnimplementedFinancingServiceServer) ComputeAmortization(context.Context, *ComputeAmortizationRequest) (*ComputeAmortizationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ComputeAmortization not implemented")
}
func (UnimplementedFinancingServiceServer) RankFinancingOptions(context.Context, *RankFinancingOptionsRequest) (*RankFinancingOptionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RankFinancingOptions not implemented")
}
func (UnimplementedFinancingServiceServer) EvaluatePreQualification(context.Context, *EvaluatePreQualificationRequest) (*EvaluatePreQualificationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EvaluatePreQualification not implemented")
}
func (UnimplementedFinancingServiceServer) EvaluateCreditRisk(context.Context, *EvaluateCreditRiskRequest) (*EvaluateCreditRiskResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EvaluateCreditRisk not implemented")
}
func (UnimplementedFinancingServiceServer) mustEmbedUnimplementedFinancingServiceServer() {}

// RegisterFinancingServiceServer registers the FinancingServiceServer with
// the gRPC server.
func RegisterFinancingServiceServer(s *grpclib.Server, srv FinancingServiceServer) {
	s.RegisterService(&_FinancingService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _FinancingService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "propstead.financing.v1.FinancingService",
	HandlerType: (*FinancingServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "ComputeAmortization", Handler: _FinancingService_ComputeAmortization_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "RankFinancingOptions", Handler: _FinancingService_RankFinancingOptions_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "EvaluatePreQualification", Handler: _FinancingService_EvaluatePreQualification_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "EvaluateCreditRisk", Handler: _FinancingService_EvaluateCreditRisk_Handler},             //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _FinancingService_ComputeAmortization_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ComputeAmortizationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinancingServiceServer).ComputeAmortization(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/propstead.financing.v1.FinancingService/ComputeAmortization",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FinancingServiceServer).ComputeAmortization(ctx, req.(*ComputeAmortizationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _FinancingService_RankFinancingOptions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RankFinancingOptionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinancingServiceServer).RankFinancingOptions(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/propstead.financing.v1.FinancingService/RankFinancingOptions",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FinancingServiceServer).RankFinancingOptions(ctx, req.(*RankFinancingOptionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _FinancingService_EvaluatePreQualification_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(EvaluatePreQualificationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinancingServiceServer).EvaluatePreQualification(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/propstead.financing.v1.FinancingService/EvaluatePreQualification",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FinancingServiceServer).EvaluatePreQualification(ctx, req.(*EvaluatePreQualificationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _FinancingService_EvaluateCreditRisk_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(EvaluateCreditRiskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinancingServiceServer).EvaluateCreditRisk(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/propstead.financing.v1.FinancingService/EvaluateCreditRisk",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FinancingServiceServer).EvaluateCreditRisk(ctx, req.(*EvaluateCreditRiskRequest))
	}
	return interceptor(ctx, in, info, handler)
}
