package fourier

// PowerSpectrum returns the magnitudes of the positive-frequency half
// of the forward FFT of a real signal. The length of data must be a
// power of two.
func PowerSpectrum(data []float64) ([]float64, error) {
	coeffs, err := RealFFT(data)
	if err != nil {
		return nil, err
	}
	ps := make([]float64, len(coeffs)/2)
	for i := range ps {
		ps[i] = coeffs[i].Abs()
	}
	return ps, nil
}
