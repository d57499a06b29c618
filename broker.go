package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"code.cloudfoundry.org/lager"
	"github.com/pivotal-cf/brokerapi"

	"github.com/cloud-gov/password-meter/strength"
)

type BindOptions struct {
	Length int `json:"length"`
}

var (
	serviceGUID      = "3a5c4c1e-5d0b-4f7e-9d8e-2b1f6f0c9a71"
	standardPlanGUID = "b6f0c2d4-8e31-4b5a-a1f7-6c9d2e4f8a03"
	longPlanGUID     = "e2d9a7c5-1f84-4c63-b0e2-9a7d5c3f1b46"
)

const maxBindLength = 128

var catalog = []brokerapi.Service{{
	ID:          serviceGUID,
	Name:        "strong-password",
	Description: "Randomly generated passwords",
	Bindable:    true,
	Plans: []brokerapi.ServicePlan{
		{
			ID:          standardPlanGUID,
			Name:        "standard",
			Description: "12 character password",
		},
		{
			ID:          longPlanGUID,
			Name:        "long",
			Description: "Password of the broker's configured length",
		},
	},
}}

type PasswordBroker struct {
	generatePassword func(int) (string, error)
	credentialSender CredentialSender
	metrics          *Metrics
	logger           lager.Logger
	config           Config
}

func (b *PasswordBroker) Services(context context.Context) []brokerapi.Service {
	return catalog
}

func (b *PasswordBroker) planLength(planID string) (int, error) {
	switch planID {
	case standardPlanGUID:
		return strength.GeneratedLength, nil
	case longPlanGUID:
		return b.config.PasswordLength, nil
	default:
		return 0, fmt.Errorf("Plan ID %s not found", planID)
	}
}

func (b *PasswordBroker) newPassword(n int) (string, strength.Result, error) {
	password, err := b.generatePassword(n)
	if err != nil {
		return "", strength.Result{}, err
	}
	b.metrics.ObserveGenerated()
	return password, strength.Score(password), nil
}

// Provision shares a fresh password through the credential sender when one is
// configured and returns the link as the dashboard URL. Without a sender,
// credentials are only available through bindings.
func (b *PasswordBroker) Provision(
	context context.Context,
	instanceID string,
	details brokerapi.ProvisionDetails,
	asyncAllowed bool,
) (brokerapi.ProvisionedServiceSpec, error) {
	b.logger.Info("provision", lager.Data{"instanceID": instanceID})

	n, err := b.planLength(details.PlanID)
	if err != nil {
		return brokerapi.ProvisionedServiceSpec{}, err
	}

	if b.credentialSender == nil {
		return brokerapi.ProvisionedServiceSpec{IsAsync: false}, nil
	}

	password, _, err := b.newPassword(n)
	if err != nil {
		return brokerapi.ProvisionedServiceSpec{}, err
	}

	link, err := b.credentialSender.Send(context, fmt.Sprintf("Instance: %s\nPassword: %s", instanceID, password))
	if err != nil {
		return brokerapi.ProvisionedServiceSpec{}, err
	}

	return brokerapi.ProvisionedServiceSpec{
		IsAsync:      false,
		DashboardURL: link,
	}, nil
}

func (b *PasswordBroker) Deprovision(
	context context.Context,
	instanceID string,
	details brokerapi.DeprovisionDetails,
	asyncAllowed bool,
) (brokerapi.DeprovisionServiceSpec, error) {
	b.logger.Info("deprovision", lager.Data{"instanceID": instanceID})

	if _, err := b.planLength(details.PlanID); err != nil {
		return brokerapi.DeprovisionServiceSpec{}, err
	}
	return brokerapi.DeprovisionServiceSpec{IsAsync: false}, nil
}

func parseBindOptions(details brokerapi.BindDetails) (BindOptions, error) {
	var opts BindOptions
	if len(details.RawParameters) == 0 {
		return opts, nil
	}
	if err := json.Unmarshal(details.RawParameters, &opts); err != nil {
		return BindOptions{}, errors.New("must pass JSON configuration")
	}
	if opts.Length < 0 || opts.Length > maxBindLength {
		return opts, fmt.Errorf(`field "length" must be between 1 and %d`, maxBindLength)
	}
	return opts, nil
}

// Bind hands out a new password on every binding. Nothing is retained.
func (b *PasswordBroker) Bind(context context.Context, instanceID, bindingID string, details brokerapi.BindDetails) (brokerapi.Binding, error) {
	b.logger.Info("bind", lager.Data{"instanceID": instanceID, "bindingID": bindingID})

	n, err := b.planLength(details.PlanID)
	if err != nil {
		return brokerapi.Binding{}, err
	}

	opts, err := parseBindOptions(details)
	if err != nil {
		return brokerapi.Binding{}, err
	}
	if opts.Length > 0 {
		n = opts.Length
	}

	password, res, err := b.newPassword(n)
	if err != nil {
		return brokerapi.Binding{}, err
	}

	return brokerapi.Binding{
		Credentials: map[string]interface{}{
			"password": password,
			"score":    res.Score,
			"band":     strength.BandFor(res.Score),
		},
	}, nil
}

func (b *PasswordBroker) Unbind(context context.Context, instanceID, bindingID string, details brokerapi.UnbindDetails) error {
	b.logger.Info("unbind", lager.Data{"instanceID": instanceID, "bindingID": bindingID})
	return nil
}

func (b *PasswordBroker) Update(context context.Context, instanceID string, details brokerapi.UpdateDetails, asyncAllowed bool) (brokerapi.UpdateServiceSpec, error) {
	return brokerapi.UpdateServiceSpec{}, errors.New("Broker does not support update")
}

func (b *PasswordBroker) LastOperation(context context.Context, instanceID, operationData string) (brokerapi.LastOperation, error) {
	return brokerapi.LastOperation{}, errors.New("Broker does not support last operation")
}
