// Package discovery finds servers to probe among tagged EC2 instances.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/gstoney/mcproto/internal/config"
)

var ErrNoTagKey = errors.New("discovery needs a tag key")

// Target is a server address found on a running instance.
type Target struct {
	InstanceID string
	Name       string
	Addr       string
}

type Finder struct {
	client   ec2.DescribeInstancesAPIClient
	tagKey   string
	tagValue string
	port     int
}

// New loads the default AWS credential chain for the configured region.
func New(ctx context.Context, cfg config.Discovery) (*Finder, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewWithClient(ec2.NewFromConfig(awsCfg), cfg)
}

func NewWithClient(client ec2.DescribeInstancesAPIClient, cfg config.Discovery) (*Finder, error) {
	if cfg.TagKey == "" {
		return nil, ErrNoTagKey
	}
	return &Finder{
		client:   client,
		tagKey:   cfg.TagKey,
		tagValue: cfg.TagValue,
		port:     cfg.Port,
	}, nil
}

func (f *Finder) filters() []ec2types.Filter {
	filters := []ec2types.Filter{{
		Name:   aws.String("instance-state-name"),
		Values: []string{"running"},
	}}
	if f.tagValue == "" {
		return append(filters, ec2types.Filter{Name: aws.String("tag-key"), Values: []string{f.tagKey}})
	}
	return append(filters, ec2types.Filter{Name: aws.String("tag:" + f.tagKey), Values: []string{f.tagValue}})
}

// Targets lists every running instance carrying the tag. Instances with a
// public address are reached on it, the rest on their private address.
func (f *Finder) Targets(ctx context.Context) ([]Target, error) {
	p := ec2.NewDescribeInstancesPaginator(f.client, &ec2.DescribeInstancesInput{Filters: f.filters()})

	var targets []Target
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("describe instances: %w", err)
		}

		for _, r := range out.Reservations {
			for _, inst := range r.Instances {
				ip := aws.ToString(inst.PublicIpAddress)
				if ip == "" {
					ip = aws.ToString(inst.PrivateIpAddress)
				}
				if ip == "" {
					continue
				}

				targets = append(targets, Target{
					InstanceID: aws.ToString(inst.InstanceId),
					Name:       nameTag(inst.Tags),
					Addr:       net.JoinHostPort(ip, strconv.Itoa(f.port)),
				})
			}
		}
	}
	return targets, nil
}

func nameTag(tags []ec2types.Tag) string {
	for _, t := range tags {
		if aws.ToString(t.Key) == "Name" {
			return aws.ToString(t.Value)
		}
	}
	return ""
}
