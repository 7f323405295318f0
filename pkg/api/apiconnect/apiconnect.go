// Package apiconnect wires the billsplit.v1 services to Connect: handler
// constructors for the server and typed clients for callers.
//
// The file is written by hand but keeps the layout and names of
// protoc-gen-connect-go output on purpose. The messages in package api are plain JSON structs with no .proto source, so
// there is nothing to generate from. If the API moves to protobuf, generated
// code can replace this package without touching its callers.
package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/bauermateus/Bill-Splitter-App/pkg/api"
)

const (
	// CalculatorServiceName is the fully-qualified name of the CalculatorService service.
	CalculatorServiceName = "billsplit.v1.CalculatorService"
	// FormServiceName is the fully-qualified name of the FormService service.
	FormServiceName = "billsplit.v1.FormService"
)

// Procedure paths, as sent in the URL path of each request.
const (
	CalculatorServiceCalculateProcedure = "/billsplit.v1.CalculatorService/Calculate"

	FormServiceOpenFormProcedure       = "/billsplit.v1.FormService/OpenForm"
	FormServiceGetFormProcedure        = "/billsplit.v1.FormService/GetForm"
	FormServiceSetBillAmountProcedure  = "/billsplit.v1.FormService/SetBillAmount"
	FormServiceIncrementSplitProcedure = "/billsplit.v1.FormService/IncrementSplit"
	FormServiceDecrementSplitProcedure = "/billsplit.v1.FormService/DecrementSplit"
	FormServiceSetTipFractionProcedure = "/billsplit.v1.FormService/SetTipFraction"
	FormServiceSubmitProcedure         = "/billsplit.v1.FormService/Submit"
	FormServiceCloseFormProcedure      = "/billsplit.v1.FormService/CloseForm"
)

// CalculatorServiceHandler is implemented by the server side of CalculatorService.
type CalculatorServiceHandler interface {
	Calculate(context.Context, *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error)
}

// FormServiceHandler is implemented by the server side of FormService.
type FormServiceHandler interface {
	OpenForm(context.Context, *connect.Request[api.OpenFormRequest]) (*connect.Response[api.OpenFormResponse], error)
	GetForm(context.Context, *connect.Request[api.FormRequest]) (*connect.Response[api.FormResponse], error)
	SetBillAmount(context.Context, *connect.Request[api.SetBillAmountRequest]) (*connect.Response[api.FormResponse], error)
	IncrementSplit(context.Context, *connect.Request[api.FormRequest]) (*connect.Response[api.FormResponse], error)
	DecrementSplit(context.Context, *connect.Request[api.FormRequest]) (*connect.Response[api.FormResponse], error)
	SetTipFraction(context.Context, *connect.Request[api.SetTipFractionRequest]) (*connect.Response[api.FormResponse], error)
	Submit(context.Context, *connect.Request[api.FormRequest]) (*connect.Response[api.SubmitResponse], error)
	CloseForm(context.Context, *connect.Request[api.FormRequest]) (*connect.Response[api.CloseFormResponse], error)
}

func withCodecs(opts []connect.HandlerOption) []connect.HandlerOption {
	return append(handlerCodecs(), opts...)
}

// route dispatches on the exact procedure path.
func route(handlers map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.URL.Path]; ok {
			h.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

// NewCalculatorServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewCalculatorServiceHandler(svc CalculatorServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodecs(opts)
	return "/" + CalculatorServiceName + "/", route(map[string]http.Handler{
		CalculatorServiceCalculateProcedure: connect.NewUnaryHandler(CalculatorServiceCalculateProcedure, svc.Calculate, opts...),
	})
}

// NewFormServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewFormServiceHandler(svc FormServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodecs(opts)
	return "/" + FormServiceName + "/", route(map[string]http.Handler{
		FormServiceOpenFormProcedure:       connect.NewUnaryHandler(FormServiceOpenFormProcedure, svc.OpenForm, opts...),
		FormServiceGetFormProcedure:        connect.NewUnaryHandler(FormServiceGetFormProcedure, svc.GetForm, opts...),
		FormServiceSetBillAmountProcedure:  connect.NewUnaryHandler(FormServiceSetBillAmountProcedure, svc.SetBillAmount, opts...),
		FormServiceIncrementSplitProcedure: connect.NewUnaryHandler(FormServiceIncrementSplitProcedure, svc.IncrementSplit, opts...),
		FormServiceDecrementSplitProcedure: connect.NewUnaryHandler(FormServiceDecrementSplitProcedure, svc.DecrementSplit, opts...),
		FormServiceSetTipFractionProcedure: connect.NewUnaryHandler(FormServiceSetTipFractionProcedure, svc.SetTipFraction, opts...),
		FormServiceSubmitProcedure:         connect.NewUnaryHandler(FormServiceSubmitProcedure, svc.Submit, opts...),
		FormServiceCloseFormProcedure:      connect.NewUnaryHandler(FormServiceCloseFormProcedure, svc.CloseForm, opts...),
	})
}

// CalculatorServiceClient is a client for the billsplit.v1.CalculatorService service.
type CalculatorServiceClient interface {
	Calculate(context.Context, *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error)
}

// NewCalculatorServiceClient constructs a client for CalculatorService. The
// baseURL is the scheme and host of the server, e.g. http://localhost:8080.
func NewCalculatorServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CalculatorServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{clientCodec()}, opts...)
	return &calculatorServiceClient{
		calculate: connect.NewClient[api.CalculateRequest, api.CalculateResponse](httpClient, baseURL+CalculatorServiceCalculateProcedure, opts...),
	}
}

type calculatorServiceClient struct {
	calculate *connect.Client[api.CalculateRequest, api.CalculateResponse]
}

func (c *calculatorServiceClient) Calculate(ctx context.Context, req *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error) {
	return c.calculate.CallUnary(ctx, req)
}

// FormServiceClient is a client for the billsplit.v1.FormService service.
type FormServiceClient interface {
	OpenForm(context.Context, *connect.Request[api.OpenFormRequest]) (*connect.Response[api.OpenFormResponse], error)
	GetForm(context.Context, *connect.Request[api.FormRequest]) (*connect.Response[api.FormResponse], error)
	SetBillAmount(context.Context, *connect.Request[api.SetBillAmountRequest]) (*connect.Response[api.FormResponse], error)
	IncrementSplit(context.Context, *connect.Request[api.FormRequest]) (*connect.Response[api.FormResponse], error)
	DecrementSplit(context.Context, *connect.Request[api.FormRequest]) (*connect.Response[api.FormResponse], error)
	SetTipFraction(context.Context, *connect.Request[api.SetTipFractionRequest]) (*connect.Response[api.FormResponse], error)
	Submit(context.Context, *connect.Request[api.FormRequest]) (*connect.Response[api.SubmitResponse], error)
	CloseForm(context.Context, *connect.Request[api.FormRequest]) (*connect.Response[api.CloseFormResponse], error)
}

// NewFormServiceClient constructs a client for FormService.
func NewFormServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) FormServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{clientCodec()}, opts...)
	return &formServiceClient{
		openForm:       connect.NewClient[api.OpenFormRequest, api.OpenFormResponse](httpClient, baseURL+FormServiceOpenFormProcedure, opts...),
		getForm:        connect.NewClient[api.FormRequest, api.FormResponse](httpClient, baseURL+FormServiceGetFormProcedure, opts...),
		setBillAmount:  connect.NewClient[api.SetBillAmountRequest, api.FormResponse](httpClient, baseURL+FormServiceSetBillAmountProcedure, opts...),
		incrementSplit: connect.NewClient[api.FormRequest, api.FormResponse](httpClient, baseURL+FormServiceIncrementSplitProcedure, opts...),
		decrementSplit: connect.NewClient[api.FormRequest, api.FormResponse](httpClient, baseURL+FormServiceDecrementSplitProcedure, opts...),
		setTipFraction: connect.NewClient[api.SetTipFractionRequest, api.FormResponse](httpClient, baseURL+FormServiceSetTipFractionProcedure, opts...),
		submit:         connect.NewClient[api.FormRequest, api.SubmitResponse](httpClient, baseURL+FormServiceSubmitProcedure, opts...),
		closeForm:      connect.NewClient[api.FormRequest, api.CloseFormResponse](httpClient, baseURL+FormServiceCloseFormProcedure, opts...),
	}
}

type formServiceClient struct {
	openForm       *connect.Client[api.OpenFormRequest, api.OpenFormResponse]
	getForm        *connect.Client[api.FormRequest, api.FormResponse]
	setBillAmount  *connect.Client[api.SetBillAmountRequest, api.FormResponse]
	incrementSplit *connect.Client[api.FormRequest, api.FormResponse]
	decrementSplit *connect.Client[api.FormRequest, api.FormResponse]
	setTipFraction *connect.Client[api.SetTipFractionRequest, api.FormResponse]
	submit         *connect.Client[api.FormRequest, api.SubmitResponse]
	closeForm      *connect.Client[api.FormRequest, api.CloseFormResponse]
}

func (c *formServiceClient) OpenForm(ctx context.Context, req *connect.Request[api.OpenFormRequest]) (*connect.Response[api.OpenFormResponse], error) {
	return c.openForm.CallUnary(ctx, req)
}

func (c *formServiceClient) GetForm(ctx context.Context, req *connect.Request[api.FormRequest]) (*connect.Response[api.FormResponse], error) {
	return c.getForm.CallUnary(ctx, req)
}

func (c *formServiceClient) SetBillAmount(ctx context.Context, req *connect.Request[api.SetBillAmountRequest]) (*connect.Response[api.FormResponse], error) {
	return c.setBillAmount.CallUnary(ctx, req)
}

func (c *formServiceClient) IncrementSplit(ctx context.Context, req *connect.Request[api.FormRequest]) (*connect.Response[api.FormResponse], error) {
	return c.incrementSplit.CallUnary(ctx, req)
}

func (c *formServiceClient) DecrementSplit(ctx context.Context, req *connect.Request[api.FormRequest]) (*connect.Response[api.FormResponse], error) {
	return c.decrementSplit.CallUnary(ctx, req)
}

func (c *formServiceClient) SetTipFraction(ctx context.Context, req *connect.Request[api.SetTipFractionRequest]) (*connect.Response[api.FormResponse], error) {
	return c.setTipFraction.CallUnary(ctx, req)
}

func (c *formServiceClient) Submit(ctx context.Context, req *connect.Request[api.FormRequest]) (*connect.Response[api.SubmitResponse], error) {
	return c.submit.CallUnary(ctx, req)
}

func (c *formServiceClient) CloseForm(ctx context.Context, req *connect.Request[api.FormRequest]) (*connect.Response[api.CloseFormResponse], error) {
	return c.closeForm.CallUnary(ctx, req)
}
