package commands

import (
	"bytes"
	"context"
	"errors"
	"github.com/kre8/kre8/pkg/api"
	"github.com/kre8/kre8/pkg/backend"
	"github.com/kre8/kre8/pkg/command"
	"github.com/kre8/kre8/pkg/configuration"
	"github.com/kre8/kre8/pkg/events"
	"github.com/kre8/kre8/pkg/kinds"
	"github.com/kre8/kre8/pkg/logger"
	"github.com/kre8/kre8/pkg/provisioner"
	"github.com/kre8/kre8/pkg/static"
	"github.com/kre8/kre8/pkg/store"
	"github.com/kre8/kre8/pkg/validation"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// execute runs one CLI invocation on a fresh command tree and returns its output.
func execute(t *testing.T, args ...string) string {
	t.Helper()

	viper.Reset()
	t.Cleanup(func() {
		viper.Reset()
		logger.Log = zap.NewNop()
	})

	out := &bytes.Buffer{}

	root := command.New()
	root.SetOut(out)
	root.SetErr(out)

	SetupGlobalFlags(root)
	PreloadCommands()
	Build(command.NewContext("1.2.3"), root)

	root.SetArgs(args)
	require.NoError(t, root.Execute())

	return out.String()
}

func TestBuild(t *testing.T) {
	PreloadCommands()

	root := command.New()
	SetupGlobalFlags(root)
	Build(command.NewContext("test"), root)

	testCases := []struct {
		name string
		path []string
	}{
		{"Version", []string{"version"}},
		{"Backend", []string{"backend"}},
		{"Init", []string{"init"}},
		{"Create", []string{"create"}},
		{"Facts list", []string{"facts", "list"}},
		{"Facts check", []string{"facts", "check"}},
		{"Facts set", []string{"facts", "set"}},
		{"Credentials set", []string{"credentials", "set"}},
		{"Credentials get", []string{"credentials", "get"}},
		{"Credentials list", []string{"credentials", "list"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			found, _, err := root.Find(tc.path)

			require.NoError(t, err)
			assert.Equal(t, tc.path[len(tc.path)-1], found.Name())
		})
	}

	assert.NotNil(t, root.PersistentFlags().Lookup("cluster-name"))
	assert.Nil(t, findCommand(root, "missing"))
}

func TestCreateArgs(t *testing.T) {
	PreloadCommands()

	root := command.New()
	Build(command.NewContext("test"), root)

	create, _, err := root.Find([]string{"create"})
	require.NoError(t, err)

	assert.NoError(t, create.Args(create, []string{"pod"}))
	assert.Error(t, create.Args(create, []string{"job"}))
	assert.Error(t, create.Args(create, []string{}))
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "1.2.3\n", execute(t, "version"))
}

func TestFactsAndCredentials(t *testing.T) {
	home := t.TempDir()
	storage := t.TempDir()

	global := []string{"--home", home, "--storage", storage, "--cluster-name", "demo", "--log", "error"}
	run := func(args ...string) string {
		return execute(t, append(args, global...)...)
	}

	assert.Contains(t, run("init"), filepath.Join(home, static.ROOTDIR, static.CONFIGDIR, static.CONFIGFILE))
	assert.FileExists(t, filepath.Join(storage, static.PRIVATEDIR, "demo_MASTER_FILE.json"))
	assert.FileExists(t, filepath.Join(storage, static.PRIVATEDIR, static.CREDENTIALS))
	assert.DirExists(t, filepath.Join(home, static.ROOTDIR))

	assert.Equal(t, "pod/web is not recorded\n", run("facts", "check", "pod/web", `{"podName":"web"}`))
	assert.Equal(t, "pod/web recorded\n", run("facts", "set", "pod/web", `{"podName":"web"}`))
	assert.Equal(t, "pod/web is recorded\n", run("facts", "check", "pod/web", `{"podName":"web"}`))
	assert.Equal(t, "pod/web is not recorded\n", run("facts", "check", "pod/web", `{"podName":"api"}`))

	listed := run("facts", "list")
	assert.Contains(t, listed, "pod/web")
	assert.Contains(t, listed, `{"podName":"web"}`)

	run("credentials", "set", "accessKey", "AKIAEXAMPLE")
	assert.Equal(t, "\"AKIAEXAMPLE\"\n", run("credentials", "get", "accessKey"))

	listed = run("credentials", "list")
	assert.Contains(t, listed, "accessKey")
	assert.NotContains(t, listed, "AKIAEXAMPLE")
}

func TestParseValue(t *testing.T) {
	testCases := []struct {
		raw    string
		wanted interface{}
	}{
		{`{"a":1}`, map[string]interface{}{"a": float64(1)}},
		{`3`, float64(3)},
		{`true`, true},
		{`plain text`, "plain text"},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.wanted, parseValue(tc.raw))
		})
	}

	assert.Equal(t, "****", masked("abc"))
	assert.Equal(t, "AKIA****", masked("AKIAEXAMPLE"))
}

func newBackend(t *testing.T) *command.Context {
	configObj := configuration.NewConfig()
	configObj.Home = t.TempDir()
	configObj.Storage = t.TempDir()
	configObj.ClusterName = "demo"

	bus := events.NewBus()
	stores := store.New(configObj)
	handler := backend.New(bus, stores.Directory, stores.Master, provisioner.NewDryRun())
	handler.Start(context.Background())

	a := api.NewApi(configObj, bus, handler, "test")
	server := httptest.NewServer(a.Router())

	t.Cleanup(func() {
		a.Hub.CloseAll()
		server.Close()
		handler.Stop()
		bus.Close()
	})

	ctx := command.NewContext("test")
	ctx.Config = configObj
	ctx.Config.Backend = server.URL
	ctx.Out = &bytes.Buffer{}

	return ctx
}

func TestCreate(t *testing.T) {
	type Wanted struct {
		key     string
		message string
		fields  []string
		err     bool
	}

	testCases := []struct {
		name   string
		req    request
		wanted Wanted
	}{
		{
			"Pod is rendered by a dry run backend",
			request{
				kind:   kinds.Pod,
				values: map[string]string{"podName": "Web", "containerName": "c1", "imageName": "nginx"},
			},
			Wanted{key: "pod/web", message: static.RESPONSE_DRY_RUN},
		},
		{
			"Deployment is rendered by a dry run backend",
			request{
				kind: kinds.Deployment,
				values: map[string]string{
					"deploymentName": "web",
					"appName":        "shop",
					"containerName":  "nginx",
					"image":          "nginx",
					"containerPort":  "80",
					"replicas":       "2",
				},
			},
			Wanted{key: "deployment/web", message: static.RESPONSE_DRY_RUN},
		},
		{
			"Invalid form returns the field errors",
			request{
				kind:   kinds.Service,
				values: map[string]string{"serviceName": "front", "appName": "shop", "port": "0"},
			},
			Wanted{fields: []string{"port", "targetPort"}},
		},
		{
			"Unknown field is rejected",
			request{
				kind:   kinds.Pod,
				values: map[string]string{"namespace": "kube-system"},
			},
			Wanted{err: true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := newBackend(t)
			tc.req.timeout = 5 * time.Second

			response, err := create(context.Background(), ctx, tc.req)

			switch {
			case tc.wanted.fields != nil:
				var fieldErrors validation.FieldErrors
				require.True(t, errors.As(err, &fieldErrors))
				assert.Equal(t, tc.wanted.fields, fieldErrors.Fields())
			case tc.wanted.err:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.wanted.key, response.Key)
				assert.Equal(t, tc.wanted.message, response.Message)
				assert.True(t, strings.HasPrefix(response.Manifest, filepath.Join(ctx.Config.Home, static.ROOTDIR, static.MANIFESTDIR)))

				printResponse(ctx.Out, response)
				assert.Contains(t, ctx.Out.(*bytes.Buffer).String(), tc.wanted.key)
			}
		})
	}
}

func TestCreateUnreachableBackend(t *testing.T) {
	ctx := command.NewContext("test")
	ctx.Config = configuration.NewConfig()
	ctx.Config.Backend = "ws://127.0.0.1:1/events"

	_, err := create(context.Background(), ctx, request{
		kind:    kinds.Pod,
		values:  map[string]string{"podName": "web", "containerName": "c1", "imageName": "nginx"},
		timeout: 300 * time.Millisecond,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not reachable")
}

func TestPrintFieldErrors(t *testing.T) {
	out := &bytes.Buffer{}
	printFieldErrors(out, validation.FieldErrors{"replicas": "replicas must be less than or equal to 4", "image": "image is a required field"})

	assert.Equal(t, "image: image is a required field\nreplicas: replicas must be less than or equal to 4\n", out.String())
}

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}
