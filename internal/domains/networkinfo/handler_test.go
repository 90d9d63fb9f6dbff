package networkinfo_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/raveberry/netinfo-agent/internal/constants"
	"github.com/raveberry/netinfo-agent/internal/domains/netprobe"
	"github.com/raveberry/netinfo-agent/internal/domains/networkinfo"
	"github.com/raveberry/netinfo-agent/internal/domains/networkinfo/networkinfo_mocks"
	"github.com/raveberry/netinfo-agent/internal/errs"
)

type handlerFields struct {
	authService  *networkinfo_mocks.MockIAuthService
	probeService *networkinfo_mocks.MockINetworkProbeService
	qrService    *networkinfo_mocks.MockIQRService
}

func newHandlerFields(t *testing.T) *handlerFields {
	return &handlerFields{
		authService:  networkinfo_mocks.NewMockIAuthService(t),
		probeService: networkinfo_mocks.NewMockINetworkProbeService(t),
		qrService:    networkinfo_mocks.NewMockIQRService(t),
	}
}

func newHandler(f *handlerFields) *networkinfo.Handler {
	return networkinfo.NewHandler(f.authService, f.probeService, f.qrService)
}

func Test_Index(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name             string
		prepare          func(f *handlerFields)
		expectedStatus   int
		expectedLocation string
		expectedBody     []string
		unexpectedBody   []string
	}{
		{
			name: "unauthorized redirects without probing",
			prepare: func(f *handlerFields) {
				// no probe or qr expectations: any invocation fails the test
				f.authService.EXPECT().
					IsAdmin(mock.Anything).
					Return(false).
					Times(1)
			},
			expectedStatus:   http.StatusSeeOther,
			expectedLocation: constants.RouteLogin,
		},
		{
			name: "wifi active",
			prepare: func(f *handlerFields) {
				f.authService.EXPECT().
					IsAdmin(mock.Anything).
					Return(true).
					Times(1)

				f.probeService.EXPECT().
					DefaultDevice().
					Return("wlan0", nil).
					Times(1)

				f.probeService.EXPECT().
					IPv4Of("wlan0").
					Return("192.168.1.5", nil).
					Times(1)

				f.probeService.EXPECT().
					WifiStatus().
					Return(netprobe.WifiStatus{
						Active:      true,
						SSID:        "MyNet",
						Password:    "hunter2",
						PasswordSet: true,
					}).
					Times(1)

				f.qrService.EXPECT().
					Fragment("WIFI:S:MyNet;T:WPA;P:hunter2;;").
					Return(`<svg id="wifi"></svg>`, nil).
					Times(1)

				f.qrService.EXPECT().
					Fragment("http://192.168.1.5/").
					Return(`<svg id="url"></svg>`, nil).
					Times(1)
			},
			expectedStatus: http.StatusOK,
			expectedBody: []string{
				"MyNet",
				"hunter2",
				`<svg id="wifi"></svg>`,
				`<svg id="url"></svg>`,
				"http://192.168.1.5/",
			},
		},
		{
			name: "wifi active without stored passphrase",
			prepare: func(f *handlerFields) {
				f.authService.EXPECT().
					IsAdmin(mock.Anything).
					Return(true).
					Times(1)

				f.probeService.EXPECT().
					DefaultDevice().
					Return("wlan0", nil).
					Times(1)

				f.probeService.EXPECT().
					IPv4Of("wlan0").
					Return("192.168.1.5", nil).
					Times(1)

				f.probeService.EXPECT().
					WifiStatus().
					Return(netprobe.WifiStatus{
						Active: true,
						SSID:   "MyNet",
					}).
					Times(1)

				f.qrService.EXPECT().
					Fragment("WIFI:S:MyNet;T:WPA;P:None;;").
					Return(`<svg id="wifi"></svg>`, nil).
					Times(1)

				f.qrService.EXPECT().
					Fragment("http://192.168.1.5/").
					Return(`<svg id="url"></svg>`, nil).
					Times(1)
			},
			expectedStatus: http.StatusOK,
			expectedBody: []string{
				"MyNet",
				"not stored",
			},
		},
		{
			name: "wifi inactive skips wifi qr",
			prepare: func(f *handlerFields) {
				f.authService.EXPECT().
					IsAdmin(mock.Anything).
					Return(true).
					Times(1)

				f.probeService.EXPECT().
					DefaultDevice().
					Return("eth0", nil).
					Times(1)

				f.probeService.EXPECT().
					IPv4Of("eth0").
					Return("10.0.0.7", nil).
					Times(1)

				f.probeService.EXPECT().
					WifiStatus().
					Return(netprobe.WifiStatus{}).
					Times(1)

				f.qrService.EXPECT().
					Fragment("http://10.0.0.7/").
					Return(`<svg id="url"></svg>`, nil).
					Times(1)
			},
			expectedStatus: http.StatusOK,
			expectedBody: []string{
				"No wireless network is active.",
				"http://10.0.0.7/",
			},
			unexpectedBody: []string{"WIFI:"},
		},
		{
			name: "device not found is a hard failure",
			prepare: func(f *handlerFields) {
				f.authService.EXPECT().
					IsAdmin(mock.Anything).
					Return(true).
					Times(1)

				f.probeService.EXPECT().
					DefaultDevice().
					Return("", errs.ErrDeviceNotFound).
					Times(1)
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name: "address not found is a hard failure",
			prepare: func(f *handlerFields) {
				f.authService.EXPECT().
					IsAdmin(mock.Anything).
					Return(true).
					Times(1)

				f.probeService.EXPECT().
					DefaultDevice().
					Return("eth0", nil).
					Times(1)

				f.probeService.EXPECT().
					IPv4Of("eth0").
					Return("", errs.ErrAddressNotFound).
					Times(1)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f := newHandlerFields(t)
			if testCase.prepare != nil {
				testCase.prepare(f)
			}

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, constants.RouteNetworkInfo, nil)

			newHandler(f).Index(recorder, request)

			require.Equal(t, testCase.expectedStatus, recorder.Code)
			if testCase.expectedLocation != "" {
				assert.Equal(t, testCase.expectedLocation, recorder.Header().Get("Location"))
			}

			body := recorder.Body.String()
			for _, expected := range testCase.expectedBody {
				assert.Contains(t, body, expected)
			}
			for _, unexpected := range testCase.unexpectedBody {
				assert.NotContains(t, body, unexpected)
			}
		})
	}
}

func Test_WifiQR(t *testing.T) {
	t.Parallel()

	t.Run("inactive wifi answers not found", func(t *testing.T) {
		t.Parallel()

		f := newHandlerFields(t)
		f.authService.EXPECT().
			IsAdmin(mock.Anything).
			Return(true).
			Times(1)

		f.probeService.EXPECT().
			WifiStatus().
			Return(netprobe.WifiStatus{}).
			Times(1)

		recorder := httptest.NewRecorder()
		newHandler(f).WifiQR(recorder, httptest.NewRequest(http.MethodGet, constants.RouteWifiQR, nil))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("active wifi serves svg document", func(t *testing.T) {
		t.Parallel()

		f := newHandlerFields(t)
		f.authService.EXPECT().
			IsAdmin(mock.Anything).
			Return(true).
			Times(1)

		f.probeService.EXPECT().
			WifiStatus().
			Return(netprobe.WifiStatus{Active: true, SSID: "MyNet"}).
			Times(1)

		f.qrService.EXPECT().
			Document("WIFI:S:MyNet;T:WPA;P:None;;").
			Return("<?xml?>\n<svg></svg>\n", nil).
			Times(1)

		recorder := httptest.NewRecorder()
		newHandler(f).WifiQR(recorder, httptest.NewRequest(http.MethodGet, constants.RouteWifiQR, nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "image/svg+xml", recorder.Header().Get("Content-Type"))
	})
}
