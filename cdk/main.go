package main

import (
	"os"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsapigateway"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

type CricketStackProps struct {
	awscdk.StackProps
}

// NewCricketStack deploys the player registry as a Lambda behind API
// Gateway. Lambda has no durable local disk, so the function is pointed at
// Postgres when POSTGRES_DSN is set at synth time and at the in-memory
// store otherwise.
func NewCricketStack(scope constructs.Construct, id string, props *CricketStackProps) awscdk.Stack {
	var stackProps awscdk.StackProps
	if props != nil {
		stackProps = props.StackProps
	}

	stack := awscdk.NewStack(scope, &id, &stackProps)

	env := map[string]*string{
		"APP_ENV":         jsii.String("prod"),
		"DB_DRIVER":       jsii.String("memory"),
		"STRICT_PAYLOADS": jsii.String(envOr("STRICT_PAYLOADS", "false")),
		"LOG_LEVEL":       jsii.String(envOr("LOG_LEVEL", "info")),
	}
	if dsn := os.Getenv("POSTGRES_DSN"); dsn != "" {
		env["DB_DRIVER"] = jsii.String("postgres")
		env["POSTGRES_DSN"] = jsii.String(dsn)
	}

	lambdaFn := awslambda.NewFunction(stack, jsii.String("CricketApi"), &awslambda.FunctionProps{
		Runtime:      awslambda.Runtime_PROVIDED_AL2023(),
		Handler:      jsii.String("bootstrap"),
		Architecture: awslambda.Architecture_ARM_64(),
		Code:         awslambda.Code_FromAsset(jsii.String("../dist"), nil),
		MemorySize:   jsii.Number(128),
		Timeout:      awscdk.Duration_Seconds(jsii.Number(10)),
		Environment:  &env,
	})

	api := awsapigateway.NewLambdaRestApi(stack, jsii.String("CricketApiGateway"), &awsapigateway.LambdaRestApiProps{
		Handler: lambdaFn,
	})

	awscdk.NewCfnOutput(stack, jsii.String("ApiURL"), &awscdk.CfnOutputProps{Value: api.Url()})

	return stack
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	app := awscdk.NewApp(nil)
	NewCricketStack(app, "CricketStack", &CricketStackProps{})
	app.Synth(nil)
}
