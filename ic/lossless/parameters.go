package lossless

import (
	dicomcodec "github.com/cocosip/go-dicom/pkg/imaging/codec"
)

// Ensure ICLosslessParameters implements codec.Parameters
var _ dicomcodec.Parameters = (*ICLosslessParameters)(nil)

// ICLosslessParameters contains parameters for DICOM pixel data transcoding
type ICLosslessParameters struct {
	// Origin selects the top-left prediction rule
	// - OriginZero: exact reconstruction (default)
	// - OriginSelf: legacy encoder rule, top-left sample decodes as 0
	Origin OriginRule

	// Concurrent codes the three channels in parallel
	Concurrent bool

	// internal storage for compatibility with generic parameter interface
	params map[string]interface{}
}

// NewICLosslessParameters creates parameters with default values
func NewICLosslessParameters() *ICLosslessParameters {
	return &ICLosslessParameters{
		Origin:     OriginZero,
		Concurrent: true,
		params:     make(map[string]interface{}),
	}
}

// GetParameter retrieves a parameter by name (implements codec.Parameters)
func (p *ICLosslessParameters) GetParameter(name string) interface{} {
	switch name {
	case "originRule":
		return p.Origin
	case "concurrent":
		return p.Concurrent
	default:
		return p.params[name]
	}
}

// SetParameter sets a parameter value (implements codec.Parameters)
func (p *ICLosslessParameters) SetParameter(name string, value interface{}) {
	switch name {
	case "originRule":
		switch v := value.(type) {
		case OriginRule:
			p.Origin = v
		case int:
			p.Origin = OriginRule(v)
		}
	case "concurrent":
		if v, ok := value.(bool); ok {
			p.Concurrent = v
		}
	default:
		p.params[name] = value
	}
}

// Validate checks the parameters and resets invalid ones to defaults
func (p *ICLosslessParameters) Validate() error {
	if p.Origin != OriginZero && p.Origin != OriginSelf {
		p.Origin = OriginZero
	}
	return nil
}

// WithOrigin sets the origin rule and returns the parameters for chaining
func (p *ICLosslessParameters) WithOrigin(rule OriginRule) *ICLosslessParameters {
	p.Origin = rule
	return p
}

// WithConcurrent sets channel concurrency and returns the parameters for chaining
func (p *ICLosslessParameters) WithConcurrent(enabled bool) *ICLosslessParameters {
	p.Concurrent = enabled
	return p
}

func (p *ICLosslessParameters) toOptions() []Option {
	return []Option{
		WithOriginRule(p.Origin),
		WithConcurrency(p.Concurrent),
	}
}

// parametersFrom converts generic parameters into ICLosslessParameters
func parametersFrom(parameters dicomcodec.Parameters) *ICLosslessParameters {
	if parameters == nil {
		return NewICLosslessParameters()
	}
	if p, ok := parameters.(*ICLosslessParameters); ok {
		return p
	}

	p := NewICLosslessParameters()
	if v := parameters.GetParameter("originRule"); v != nil {
		p.SetParameter("originRule", v)
	}
	if v := parameters.GetParameter("concurrent"); v != nil {
		p.SetParameter("concurrent", v)
	}
	return p
}
